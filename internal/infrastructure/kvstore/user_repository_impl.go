package kvstore

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
)

// UserRepository keeps accounts under a single unversioned key. The users
// collection survives store-version bumps; only listing data is abandoned.
type UserRepository struct {
	col *Collection[entity.User]
}

func NewUserRepository(store Store, logger *logrus.Logger) *UserRepository {
	return &UserRepository{
		col: NewCollection(store, UsersKey(), []entity.User{}, logger),
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	users, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	users, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Create(ctx context.Context, u entity.User) error {
	users, err := r.col.Load(ctx)
	if err != nil {
		return err
	}
	return r.col.Save(ctx, append(users, u))
}

var _ repository.UserRepository = (*UserRepository)(nil)
