package repository

import (
	"context"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

// UserRepository stores accounts. Users are created at signup and never
// updated or deleted afterwards.
type UserRepository interface {
	// GetByUsername does a case-sensitive exact match; nil when absent.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u entity.User) error
}

// SessionStore keeps the explicit session records referenced by auth
// cookies. One session per user id.
type SessionStore interface {
	Put(ctx context.Context, s entity.Session) error
	// Get returns nil when no session exists or the record is unreadable.
	Get(ctx context.Context, userID string) (*entity.Session, error)
	Delete(ctx context.Context, userID string) error
}
