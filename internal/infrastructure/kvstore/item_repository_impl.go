package kvstore

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
)

// ItemRepository keeps the lost and found collections under two versioned
// store keys. Every mutation loads the authoritative collection, mutates
// it, and saves it back; nothing is persisted from a stale snapshot.
type ItemRepository struct {
	lost  *Collection[entity.Item]
	found *Collection[entity.Item]
}

func NewItemRepository(store Store, version string, logger *logrus.Logger) *ItemRepository {
	now := time.Now()
	return &ItemRepository{
		lost:  NewCollection(store, CollectionKey(lostItemsCollection, version), SeedLostItems(now), logger),
		found: NewCollection(store, CollectionKey(foundItemsCollection, version), SeedFoundItems(now), logger),
	}
}

func (r *ItemRepository) collection(t entity.ItemType) *Collection[entity.Item] {
	if t == entity.ItemTypeLost {
		return r.lost
	}
	return r.found
}

func (r *ItemRepository) List(ctx context.Context, t entity.ItemType) ([]entity.Item, error) {
	items, err := r.collection(t).Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	for _, col := range []*Collection[entity.Item]{r.lost, r.found} {
		items, err := col.Load(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].ID == id {
				it := items[i]
				return &it, nil
			}
		}
	}
	return nil, nil
}

func (r *ItemRepository) Add(ctx context.Context, it entity.Item) error {
	col := r.collection(it.Type)
	items, err := col.Load(ctx)
	if err != nil {
		return err
	}
	return col.Save(ctx, append([]entity.Item{it}, items...))
}

func (r *ItemRepository) MarkRetrieved(ctx context.Context, id string) error {
	for _, col := range []*Collection[entity.Item]{r.lost, r.found} {
		items, err := col.Load(ctx)
		if err != nil {
			return err
		}
		changed := false
		for i := range items {
			if items[i].ID == id && !items[i].Retrieved {
				items[i].Retrieved = true
				changed = true
			}
		}
		if changed {
			if err := col.Save(ctx, items); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	for _, col := range []*Collection[entity.Item]{r.lost, r.found} {
		items, err := col.Load(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		for _, it := range items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		if len(kept) != len(items) {
			if err := col.Save(ctx, kept); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
