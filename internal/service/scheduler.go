package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

// SchedulerService owns the per-lesson spaced-repetition state machine:
// recording completions, advancing repetition levels, computing review dates
// and answering due-for-review queries. Review-date expiry is evaluated
// lazily on each query, there is no background sweep.
type SchedulerService struct {
	analyticsRepo AnalyticsRepository

	now func() time.Time
}

func NewSchedulerService(analyticsRepo AnalyticsRepository) *SchedulerService {
	return &SchedulerService{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

// RecordCompletion registers a completed review pass of a lesson and
// reschedules it along the interval table. Used for the repeat-review path;
// first-time completions go through MarkLessonCompleted.
func (s *SchedulerService) RecordCompletion(ctx context.Context, profileID, lessonID string, errorCount int) (*entities.SpacedRepetitionInfo, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	info := s.recordCompletion(doc, lessonID, errorCount)

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return nil, fmt.Errorf("save analytics: %w", err)
	}

	return info, nil
}

// MarkLessonCompleted registers the first full completion of a lesson.
// Lessons learned cleanly (at most MaxErrorsToAdvance logged error entries)
// are auto-hidden from the default list; noisy lessons stay visible for
// immediate re-practice. The lesson is also appended to the completion log.
func (s *SchedulerService) MarkLessonCompleted(ctx context.Context, profileID, lessonID string) (*entities.SpacedRepetitionInfo, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	errorCount := doc.LessonErrorCount(lessonID)

	info := s.recordCompletion(doc, lessonID, errorCount)
	info.IsHidden = errorCount <= entities.MaxErrorsToAdvance
	doc.MarkCompleted(lessonID)

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return nil, fmt.Errorf("save analytics: %w", err)
	}

	return info, nil
}

// ToggleVisibility sets the hidden flag on a lesson's review record,
// creating the record if the lesson was never tracked. For an untracked
// lesson the status is inferred from the completion log.
func (s *SchedulerService) ToggleVisibility(ctx context.Context, profileID, lessonID string, hidden bool) (*entities.SpacedRepetitionInfo, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	info := doc.RepetitionInfo(lessonID)
	if info == nil {
		info = entities.NewSpacedRepetitionInfo(lessonID)
		if doc.HasCompleted(lessonID) {
			info.Status = entities.StatusCompleted
		}
		doc.UpsertRepetitionInfo(info)
	}
	info.IsHidden = hidden

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return nil, fmt.Errorf("save analytics: %w", err)
	}

	return info, nil
}

// DueForReview returns the profile's lessons whose review date has arrived.
// Hidden lessons are never included. No ordering beyond storage order,
// callers rank the sentences downstream.
func (s *SchedulerService) DueForReview(ctx context.Context, profileID string) ([]*entities.SpacedRepetitionInfo, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var due []*entities.SpacedRepetitionInfo
	for _, info := range doc.SpacedRepetition {
		if info.Due(now) {
			due = append(due, info)
		}
	}

	return due, nil
}

// RefreshStatuses flips every completed lesson whose review date has passed
// to due-for-review. The transition is one-way and the whole operation is
// idempotent: re-running it changes nothing.
func (s *SchedulerService) RefreshStatuses(ctx context.Context, profileID string) error {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return err
	}

	now := s.now()
	changed := false
	for _, info := range doc.SpacedRepetition {
		if info.MarkDue(now) {
			changed = true
		}
	}
	if !changed {
		return nil
	}

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return fmt.Errorf("save analytics: %w", err)
	}

	return nil
}

func (s *SchedulerService) recordCompletion(doc *entities.AnalyticsDocument, lessonID string, errorCount int) *entities.SpacedRepetitionInfo {
	info := doc.RepetitionInfo(lessonID)
	if info == nil {
		info = entities.NewSpacedRepetitionInfo(lessonID)
		doc.UpsertRepetitionInfo(info)
	}
	info.RecordCompletion(errorCount, s.now())
	return info
}
