package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/founditapp/foundit-backend/internal/domain/entity"
	"github.com/founditapp/foundit-backend/internal/domain/repository"
	"github.com/founditapp/foundit-backend/pkg/helpers"
)

// ExperienceService handles the append-only testimonial wall.
type ExperienceService struct {
	Experiences repository.ExperienceRepository
	Logger      *logrus.Logger
}

func NewExperienceService(experiences repository.ExperienceRepository, logger *logrus.Logger) *ExperienceService {
	return &ExperienceService{Experiences: experiences, Logger: logger}
}

type AddExperienceInput struct {
	Name    string
	Comment string
	Rating  int
}

func (s *ExperienceService) List(ctx context.Context) ([]entity.UserExperience, error) {
	return s.Experiences.List(ctx)
}

// Add validates and stores a testimonial, stamping id, timestamp and a
// pseudo-random avatar.
func (s *ExperienceService) Add(ctx context.Context, in AddExperienceInput) (*entity.UserExperience, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Comment) == "" {
		return nil, ErrInvalidExperience
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidExperience
	}
	exp := entity.UserExperience{
		ID:        uuid.NewString(),
		Name:      in.Name,
		AvatarURL: helpers.RandomAvatarURL(),
		Rating:    in.Rating,
		Comment:   in.Comment,
		Timestamp: time.Now(),
	}
	if err := s.Experiences.Add(ctx, exp); err != nil {
		return nil, err
	}
	return &exp, nil
}
