package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/gateway"
)

func newItemService(repo *fakeItemRepo, matcher gateway.Matcher) *ItemService {
	return NewItemService(repo, &fakeUserRepo{}, matcher, nil, "", nil, "", nil, nil)
}

func sessionFor(userID string) *entity.Session {
	return &entity.Session{UserID: userID, Username: "u-" + userID, SID: "sid", CreatedAt: time.Now()}
}

func TestReportRequiresSession(t *testing.T) {
	svc := newItemService(&fakeItemRepo{}, &fakeMatcher{})

	_, err := svc.Report(context.Background(), nil, ReportItemInput{Type: entity.ItemTypeFound, Title: "Keys"})
	require.ErrorIs(t, err, ErrNoSession)
}

func TestReportStampsOwnershipAndDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	svc := newItemService(repo, &fakeMatcher{})

	it, err := svc.Report(ctx, sessionFor("u1"), ReportItemInput{
		Type:  entity.ItemTypeFound,
		Title: "Keys",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(it.ID, "f"))
	assert.Equal(t, "u1", it.OwnerID)
	assert.False(t, it.Retrieved)
	assert.False(t, it.Timestamp.IsZero())

	found, err := svc.List(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Keys", found[0].Title)
}

func TestReportRejectsUnknownType(t *testing.T) {
	svc := newItemService(&fakeItemRepo{}, &fakeMatcher{})

	_, err := svc.Report(context.Background(), sessionFor("u1"), ReportItemInput{Type: "misplaced"})
	require.ErrorIs(t, err, ErrInvalidItem)
}

func TestMarkRetrievedOwnerOnly(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	svc := newItemService(repo, &fakeMatcher{})

	it, err := svc.Report(ctx, sessionFor("u1"), ReportItemInput{Type: entity.ItemTypeLost, Title: "Wallet"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.MarkRetrieved(ctx, nil, it.ID), ErrNoSession)
	require.ErrorIs(t, svc.MarkRetrieved(ctx, sessionFor("intruder"), it.ID), ErrNotOwner)

	require.NoError(t, svc.MarkRetrieved(ctx, sessionFor("u1"), it.ID))
	got, err := repo.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, got.Retrieved)

	// Idempotent: repeating the call leaves the item retrieved.
	require.NoError(t, svc.MarkRetrieved(ctx, sessionFor("u1"), it.ID))
	got, err = repo.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, got.Retrieved)
}

func TestDeleteOwnerOnlyAndPermanent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeItemRepo{}
	svc := newItemService(repo, &fakeMatcher{})

	it, err := svc.Report(ctx, sessionFor("u1"), ReportItemInput{Type: entity.ItemTypeFound, Title: "Umbrella"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, sessionFor("intruder"), it.ID), ErrNotOwner)

	require.NoError(t, svc.Delete(ctx, sessionFor("u1"), it.ID))
	for _, typ := range []entity.ItemType{entity.ItemTypeLost, entity.ItemTypeFound} {
		items, err := svc.List(ctx, typ)
		require.NoError(t, err)
		for _, listed := range items {
			assert.NotEqual(t, it.ID, listed.ID)
		}
	}

	// Second delete finds nothing to authorize against.
	require.ErrorIs(t, svc.Delete(ctx, sessionFor("u1"), it.ID), ErrItemNotFound)
}

func TestAnalyzePassesThroughGatewayFailure(t *testing.T) {
	svc := newItemService(&fakeItemRepo{}, &fakeMatcher{err: gateway.ErrAnalysisFailed})

	_, err := svc.Analyze(context.Background(), []byte{0xff}, "image/png")
	require.ErrorIs(t, err, gateway.ErrAnalysisFailed)
}

func TestAnalyzeReturnsDetails(t *testing.T) {
	details := &gateway.ItemDetails{Title: "Black wallet", Description: "Leather", Category: "Wallet"}
	svc := newItemService(&fakeItemRepo{}, &fakeMatcher{details: details})

	got, err := svc.Analyze(context.Background(), []byte{0x1}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestUploadImageRequiresSession(t *testing.T) {
	svc := newItemService(&fakeItemRepo{}, &fakeMatcher{})

	_, err := svc.UploadImage(context.Background(), nil, strings.NewReader("img"), "a.png", "image/png")
	require.ErrorIs(t, err, ErrNoSession)
}
