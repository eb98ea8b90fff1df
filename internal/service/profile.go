package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

type ProfileService struct {
	profileRepo ProfileRepository
}

func NewProfileService(profileRepo ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Create registers a new learner profile, generating an ID if none is given.
func (s *ProfileService) Create(ctx context.Context, id, name string) (*entities.Profile, error) {
	if id == "" {
		id = uuid.NewString()
	}

	profile := entities.NewProfile(id, name)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*entities.Profile, error) {
	return s.profileRepo.Get(ctx, id)
}
