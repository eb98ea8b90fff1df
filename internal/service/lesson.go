package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

// ErrNotAllowed is returned when a non-admin profile attempts a content mutation.
var ErrNotAllowed = errors.New("operation not allowed")

type LessonService struct {
	lessonRepo  LessonRepository
	profileRepo ProfileRepository
}

func NewLessonService(lessonRepo LessonRepository, profileRepo ProfileRepository) *LessonService {
	return &LessonService{
		lessonRepo:  lessonRepo,
		profileRepo: profileRepo,
	}
}

func (s *LessonService) Get(ctx context.Context, id string) (*entities.Lesson, error) {
	return s.lessonRepo.Get(ctx, id)
}

func (s *LessonService) List(ctx context.Context) ([]*entities.Lesson, error) {
	return s.lessonRepo.List(ctx)
}

// Update overwrites lesson content. Only admin profiles may mutate content.
func (s *LessonService) Update(ctx context.Context, profileID string, lesson *entities.Lesson) error {
	isAdmin, err := s.profileRepo.IsAdmin(ctx, profileID)
	if err != nil {
		return fmt.Errorf("is admin: %w", err)
	}
	if !isAdmin {
		return ErrNotAllowed
	}

	return s.lessonRepo.Save(ctx, lesson)
}
