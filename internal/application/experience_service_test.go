package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExperienceStampsFields(t *testing.T) {
	ctx := context.Background()
	svc := NewExperienceService(&fakeExperienceRepo{}, nil)

	exp, err := svc.Add(ctx, AddExperienceInput{Name: "Dewi", Comment: "Got my wallet back in a day.", Rating: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, exp.ID)
	assert.False(t, exp.Timestamp.IsZero())
	assert.True(t, strings.HasPrefix(exp.AvatarURL, "https://i.pravatar.cc/"))
}

func TestAddExperienceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	repo := &fakeExperienceRepo{}
	svc := NewExperienceService(repo, nil)

	cases := []AddExperienceInput{
		{Name: "", Comment: "nice", Rating: 3},
		{Name: "  ", Comment: "nice", Rating: 3},
		{Name: "Budi", Comment: "", Rating: 3},
		{Name: "Budi", Comment: "nice", Rating: 0},
		{Name: "Budi", Comment: "nice", Rating: 6},
	}
	for _, in := range cases {
		_, err := svc.Add(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidExperience)
	}
	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListExperiencesNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewExperienceService(&fakeExperienceRepo{}, nil)

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Add(ctx, AddExperienceInput{Name: name, Comment: "ok", Rating: 4})
		require.NoError(t, err)
	}
	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Name)
	assert.Equal(t, "first", got[2].Name)
}
