package repository

import (
	"context"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
)

// ExperienceRepository stores testimonials. Append-only.
type ExperienceRepository interface {
	// List returns all experiences, newest first.
	List(ctx context.Context) ([]entity.UserExperience, error)
	// Add prepends the experience and persists the collection.
	Add(ctx context.Context, exp entity.UserExperience) error
}
