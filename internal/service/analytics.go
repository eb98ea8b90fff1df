package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
)

// AnalyticsService owns the per-profile error log and completion history.
type AnalyticsService struct {
	analyticsRepo AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// loadDocument loads the profile's analytics document, returning a fresh
// empty document for profiles that have no record yet.
func loadDocument(ctx context.Context, repo AnalyticsRepository, profileID string) (*entities.AnalyticsDocument, error) {
	doc, err := repo.Load(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrAnalyticsNotFound) {
			return entities.NewAnalyticsDocument(), nil
		}

		return nil, fmt.Errorf("load analytics: %w", err)
	}

	return doc, nil
}

// LogError appends an exercise error to the profile's error log.
func (s *AnalyticsService) LogError(ctx context.Context, profileID string, entry entities.ErrorEntry) error {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return err
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	doc.LogError(entry)

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return fmt.Errorf("save analytics: %w", err)
	}

	return nil
}

// ProgressSummary aggregates the profile's learning state for the progress view.
type ProgressSummary struct {
	CompletedLessons int        `json:"completedLessons"`
	TrackedLessons   int        `json:"trackedLessons"`
	DueForReview     int        `json:"dueForReview"`
	HiddenLessons    int        `json:"hiddenLessons"`
	TotalErrors      int        `json:"totalErrors"`
	LastCompletedAt  *time.Time `json:"lastCompletedAt,omitempty"`
}

// GetProgressSummary computes the profile's progress counters.
func (s *AnalyticsService) GetProgressSummary(ctx context.Context, profileID string) (*ProgressSummary, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{
		CompletedLessons: len(doc.CompletedLessons),
		TrackedLessons:   len(doc.SpacedRepetition),
		TotalErrors:      len(doc.Errors),
	}

	now := time.Now()
	for _, info := range doc.SpacedRepetition {
		if info.IsHidden {
			summary.HiddenLessons++
		}
		if info.Due(now) {
			summary.DueForReview++
		}
		if n := len(info.CompletionDates); n > 0 {
			last := info.CompletionDates[n-1]
			if summary.LastCompletedAt == nil || last.After(*summary.LastCompletedAt) {
				summary.LastCompletedAt = &last
			}
		}
	}

	return summary, nil
}
