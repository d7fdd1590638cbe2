package kvstore

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
)

// ExperienceRepository keeps the append-only testimonial collection.
type ExperienceRepository struct {
	col *Collection[entity.UserExperience]
}

func NewExperienceRepository(store Store, version string, logger *logrus.Logger) *ExperienceRepository {
	return &ExperienceRepository{
		col: NewCollection(store, CollectionKey(experiencesCollection, version), SeedExperiences(time.Now()), logger),
	}
}

func (r *ExperienceRepository) List(ctx context.Context) ([]entity.UserExperience, error) {
	exps, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(exps, func(i, j int) bool {
		return exps[i].Timestamp.After(exps[j].Timestamp)
	})
	return exps, nil
}

func (r *ExperienceRepository) Add(ctx context.Context, exp entity.UserExperience) error {
	exps, err := r.col.Load(ctx)
	if err != nil {
		return err
	}
	return r.col.Save(ctx, append([]entity.UserExperience{exp}, exps...))
}

var _ repository.ExperienceRepository = (*ExperienceRepository)(nil)
