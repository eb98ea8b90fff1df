package httpapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/service"
)

type LessonService interface {
	Get(ctx context.Context, id string) (*entities.Lesson, error)
	List(ctx context.Context) ([]*entities.Lesson, error)
	Update(ctx context.Context, profileID string, lesson *entities.Lesson) error
}

type SchedulerService interface {
	RecordCompletion(ctx context.Context, profileID, lessonID string, errorCount int) (*entities.SpacedRepetitionInfo, error)
	MarkLessonCompleted(ctx context.Context, profileID, lessonID string) (*entities.SpacedRepetitionInfo, error)
	ToggleVisibility(ctx context.Context, profileID, lessonID string, hidden bool) (*entities.SpacedRepetitionInfo, error)
	DueForReview(ctx context.Context, profileID string) ([]*entities.SpacedRepetitionInfo, error)
	RefreshStatuses(ctx context.Context, profileID string) error
}

type PriorityService interface {
	Get(ctx context.Context, profileID, lessonID string) ([]entities.PrioritySentence, error)
	Save(ctx context.Context, profileID, lessonID string) ([]entities.PrioritySentence, error)
}

type ReviewService interface {
	SentencesDueForReview(ctx context.Context, profileID, lessonID string) ([]service.ReviewSentence, error)
}

type AnalyticsService interface {
	LogError(ctx context.Context, profileID string, entry entities.ErrorEntry) error
	GetProgressSummary(ctx context.Context, profileID string) (*service.ProgressSummary, error)
}

type ProfileService interface {
	Create(ctx context.Context, id, name string) (*entities.Profile, error)
	Get(ctx context.Context, id string) (*entities.Profile, error)
}

type Handler struct {
	logger           *zap.Logger
	lessonService    LessonService
	schedulerService SchedulerService
	priorityService  PriorityService
	reviewService    ReviewService
	analyticsService AnalyticsService
	profileService   ProfileService
}

func NewHandler(
	logger *zap.Logger,
	lessonService LessonService,
	schedulerService SchedulerService,
	priorityService PriorityService,
	reviewService ReviewService,
	analyticsService AnalyticsService,
	profileService ProfileService,
) *Handler {
	return &Handler{
		logger:           logger,
		lessonService:    lessonService,
		schedulerService: schedulerService,
		priorityService:  priorityService,
		reviewService:    reviewService,
		analyticsService: analyticsService,
		profileService:   profileService,
	}
}

// Register wires all routes onto the echo instance.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/profiles", h.createProfile)
	api.GET("/profiles/me", h.withProfile(h.getProfile))
	api.GET("/progress", h.withProfile(h.getProgress))
	api.POST("/errors", h.withProfile(h.logError))

	api.GET("/lessons", h.listLessons)
	api.GET("/lessons/:id", h.getLesson)
	api.PUT("/lessons/:id", h.withProfile(h.updateLesson))

	api.POST("/lessons/:id/complete", h.withProfile(h.completeLesson))
	api.POST("/lessons/:id/review", h.withProfile(h.reviewLesson))
	api.POST("/lessons/:id/visibility", h.withProfile(h.toggleVisibility))
	api.GET("/lessons/:id/sentences", h.withProfile(h.getPrioritySentences))
	api.POST("/lessons/:id/sentences/refresh", h.withProfile(h.refreshPrioritySentences))

	api.GET("/review/due", h.withProfile(h.getDueLessons))
	api.GET("/review/sentences", h.withProfile(h.getReviewSentences))
}
