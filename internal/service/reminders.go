package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderService periodically tells learners with a linked chat how many
// lessons are waiting for review. It only calls the scheduler's read-side
// operations, the review state itself is still evaluated lazily per request.
type ReminderService struct {
	scheduler   *SchedulerService
	profileRepo ProfileRepository
	notifier    ReviewNotifier
	schedule    string
	logger      *zap.Logger
}

func NewReminderService(
	scheduler *SchedulerService,
	profileRepo ProfileRepository,
	notifier ReviewNotifier,
	schedule string,
	logger *zap.Logger,
) *ReminderService {
	return &ReminderService{
		scheduler:   scheduler,
		profileRepo: profileRepo,
		notifier:    notifier,
		schedule:    schedule,
		logger:      logger,
	}
}

// Start begins the reminder loop and blocks until the context is cancelled.
func (s *ReminderService) Start(ctx context.Context) {
	s.logger.Info("reminder service started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		if err := s.sendReminders(ctx); err != nil {
			s.logger.Error("failed to send review reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()

	<-ctx.Done()

	c.Stop()
	s.logger.Info("reminder service stopped")
}

func (s *ReminderService) sendReminders(ctx context.Context) error {
	profiles, err := s.profileRepo.ListWithChat(ctx)
	if err != nil {
		return err
	}

	for _, p := range profiles {
		if err := s.scheduler.RefreshStatuses(ctx, p.ID); err != nil {
			s.logger.Error("refresh statuses", zap.String("profile_id", p.ID), zap.Error(err))
			continue
		}

		due, err := s.scheduler.DueForReview(ctx, p.ID)
		if err != nil {
			s.logger.Error("due for review", zap.String("profile_id", p.ID), zap.Error(err))
			continue
		}
		if len(due) == 0 {
			continue
		}

		if err := s.notifier.NotifyDueLessons(p.ChatID, len(due)); err != nil {
			s.logger.Error("notify due lessons",
				zap.String("profile_id", p.ID),
				zap.Int64("chat_id", p.ChatID),
				zap.Error(err),
			)
		}
	}

	return nil
}
