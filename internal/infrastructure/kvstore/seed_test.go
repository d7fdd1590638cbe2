package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

func TestResetDemoDataLandsOnRepositoryKeys(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	require.NoError(t, ResetDemoData(ctx, mem, "test", nil))

	// The repositories must read exactly what the seeder wrote, with no
	// self-reseed under a different key.
	for _, name := range []string{lostItemsCollection, foundItemsCollection, experiencesCollection} {
		_, ok, err := mem.Get(ctx, CollectionKey(name, "test"))
		require.NoError(t, err)
		assert.True(t, ok, "collection %q not written", name)
	}

	repo := NewItemRepository(mem, "test", nil)
	lost, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	require.NotEmpty(t, lost)

	// A mutation through the repository must land in the seeded
	// collection, proving both sides share one key.
	require.NoError(t, repo.MarkRetrieved(ctx, lost[0].ID))
	raw, ok, err := mem.Get(ctx, CollectionKey(lostItemsCollection, "test"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"retrieved":true`)

	exps := NewExperienceRepository(mem, "test", nil)
	got, err := exps.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestResetDemoDataRewritesOnRerun(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	require.NoError(t, ResetDemoData(ctx, mem, "test", nil))

	repo := NewItemRepository(mem, "test", nil)
	lost, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	require.NotEmpty(t, lost)
	for _, it := range lost {
		require.NoError(t, repo.Delete(ctx, it.ID))
	}
	emptied, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	assert.Empty(t, emptied)

	require.NoError(t, ResetDemoData(ctx, mem, "test", nil))
	restored, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	assert.Len(t, restored, len(lost))
}
