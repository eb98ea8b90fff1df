package service

import (
	"context"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

type LessonRepository interface {
	Get(ctx context.Context, id string) (*entities.Lesson, error)
	List(ctx context.Context) ([]*entities.Lesson, error)
	Save(ctx context.Context, lesson *entities.Lesson) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	Get(ctx context.Context, id string) (*entities.Profile, error)
	IsAdmin(ctx context.Context, id string) (bool, error)
	ListWithChat(ctx context.Context) ([]*entities.Profile, error)
}

type AnalyticsRepository interface {
	Load(ctx context.Context, profileID string) (*entities.AnalyticsDocument, error)
	Save(ctx context.Context, profileID string, doc *entities.AnalyticsDocument) error
}

// ReviewNotifier pushes review reminders to a linked chat.
type ReviewNotifier interface {
	NotifyDueLessons(chatID int64, count int) error
}
