package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

// emptyItemRepo returns a repository whose collections start empty instead
// of carrying the demo seed.
func emptyItemRepo(store Store) *ItemRepository {
	return &ItemRepository{
		lost:  NewCollection(store, CollectionKey("lost-items", "test"), []entity.Item{}, nil),
		found: NewCollection(store, CollectionKey("found-items", "test"), []entity.Item{}, nil),
	}
}

func newItem(id string, t entity.ItemType, title string, ts time.Time) entity.Item {
	return entity.Item{ID: id, Type: t, Title: title, Timestamp: ts, OwnerID: "u1"}
}

func TestItemRepositoryListSortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())
	base := time.Now()

	require.NoError(t, repo.Add(ctx, newItem("l1", entity.ItemTypeLost, "oldest", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Add(ctx, newItem("l2", entity.ItemTypeLost, "newest", base)))
	require.NoError(t, repo.Add(ctx, newItem("l3", entity.ItemTypeLost, "middle", base.Add(-time.Hour))))
	require.NoError(t, repo.Add(ctx, newItem("f1", entity.ItemTypeFound, "other side", base)))

	lost, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	require.Len(t, lost, 3)
	assert.Equal(t, []string{"l2", "l3", "l1"}, []string{lost[0].ID, lost[1].ID, lost[2].ID})

	found, err := repo.List(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "f1", found[0].ID)
}

func TestItemRepositoryAddFoundKeysScenario(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())

	it := entity.Item{
		ID:        "f1700000000000",
		Type:      entity.ItemTypeFound,
		Title:     "Keys",
		OwnerID:   "u1",
		Timestamp: time.Now(),
	}
	require.NoError(t, repo.Add(ctx, it))

	found, err := repo.List(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Keys", found[0].Title)
	assert.Equal(t, "u1", found[0].OwnerID)
	assert.False(t, found[0].Retrieved)
}

func TestItemRepositoryMarkRetrievedIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())
	require.NoError(t, repo.Add(ctx, newItem("l1", entity.ItemTypeLost, "wallet", time.Now())))

	require.NoError(t, repo.MarkRetrieved(ctx, "l1"))
	first, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	require.True(t, first[0].Retrieved)

	// Second call changes nothing and never un-retrieves.
	require.NoError(t, repo.MarkRetrieved(ctx, "l1"))
	second, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestItemRepositoryMarkRetrievedUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())
	require.NoError(t, repo.Add(ctx, newItem("f1", entity.ItemTypeFound, "umbrella", time.Now())))

	require.NoError(t, repo.MarkRetrieved(ctx, "missing"))
	found, err := repo.List(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	assert.False(t, found[0].Retrieved)
}

func TestItemRepositoryDeleteIsPermanent(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())
	require.NoError(t, repo.Add(ctx, newItem("l1", entity.ItemTypeLost, "wallet", time.Now())))
	require.NoError(t, repo.Add(ctx, newItem("f1", entity.ItemTypeFound, "umbrella", time.Now())))

	require.NoError(t, repo.Delete(ctx, "f1"))
	require.NoError(t, repo.Delete(ctx, "f1")) // no-op when already gone

	for _, typ := range []entity.ItemType{entity.ItemTypeLost, entity.ItemTypeFound} {
		items, err := repo.List(ctx, typ)
		require.NoError(t, err)
		for _, it := range items {
			assert.NotEqual(t, "f1", it.ID)
		}
	}

	// The untouched lost collection is intact.
	got, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestItemRepositoryGetByIDSearchesBothCollections(t *testing.T) {
	ctx := context.Background()
	repo := emptyItemRepo(NewMemoryStore())
	require.NoError(t, repo.Add(ctx, newItem("l1", entity.ItemTypeLost, "wallet", time.Now())))
	require.NoError(t, repo.Add(ctx, newItem("f1", entity.ItemTypeFound, "umbrella", time.Now())))

	lost, err := repo.GetByID(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, lost)
	assert.Equal(t, entity.ItemTypeLost, lost.Type)

	found, err := repo.GetByID(ctx, "f1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.ItemTypeFound, found.Type)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepositorySeedsDefaultsOnFirstList(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository(NewMemoryStore(), "v1.2", nil)

	lost, err := repo.List(ctx, entity.ItemTypeLost)
	require.NoError(t, err)
	assert.NotEmpty(t, lost)

	found, err := repo.List(ctx, entity.ItemTypeFound)
	require.NoError(t, err)
	assert.NotEmpty(t, found)
}
