package repository

import (
	"context"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

// ItemRepository defines storage operations over the two listing
// collections. Mutations persist the full post-mutation collection; the
// durable store is the only persistence authority.
type ItemRepository interface {
	// List returns all items of the given type, newest first.
	List(ctx context.Context, t entity.ItemType) ([]entity.Item, error)
	// GetByID looks the item up across both collections; nil when absent.
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// Add prepends the item to its type's collection and persists it.
	Add(ctx context.Context, it entity.Item) error
	// MarkRetrieved flips Retrieved to true wherever the id is found.
	// It is idempotent and a no-op for unknown ids.
	MarkRetrieved(ctx context.Context, id string) error
	// Delete removes the item permanently. No-op for unknown ids.
	Delete(ctx context.Context, id string) error
}
