package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
)

// maxDepthBoost caps how much the repetition level can push a sentence up
// the review queue.
const maxDepthBoost = 5

// ReviewSentence is a priority sentence annotated with its lesson and the
// repetition-depth-adjusted priority used for queue ordering.
type ReviewSentence struct {
	entities.PrioritySentence
	LessonID         string `json:"lessonId"`
	AdjustedPriority int    `json:"adjustedPriority"`
}

// ReviewService answers "what should the learner review today" by combining
// scheduler state with the per-lesson priority selections.
type ReviewService struct {
	lessonRepo    LessonRepository
	analyticsRepo AnalyticsRepository
	priority      *PriorityService

	now func() time.Time
}

func NewReviewService(lessonRepo LessonRepository, analyticsRepo AnalyticsRepository, priority *PriorityService) *ReviewService {
	return &ReviewService{
		lessonRepo:    lessonRepo,
		analyticsRepo: analyticsRepo,
		priority:      priority,
		now:           time.Now,
	}
}

// SentencesDueForReview collects review sentences across due lessons,
// ordered by adjusted priority.
//
// With an explicit lessonID the lesson is included unconditionally unless
// hidden, even before any formal completion cycle: an untracked lesson gets
// a transient due-for-review descriptor at level 0 so the learner can
// preview its review sentences. With no lessonID the candidates are every
// non-hidden lesson already flipped to due-for-review, plus completed
// lessons whose review date has passed but whose status was not refreshed
// yet.
func (s *ReviewService) SentencesDueForReview(ctx context.Context, profileID, lessonID string) ([]ReviewSentence, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	var candidates []*entities.SpacedRepetitionInfo
	if lessonID != "" {
		info, err := s.explicitCandidate(ctx, doc, lessonID)
		if err != nil {
			return nil, err
		}
		if info != nil {
			candidates = append(candidates, info)
		}
	} else {
		now := s.now()
		for _, info := range doc.SpacedRepetition {
			if info.IsHidden {
				continue
			}
			if info.Status == entities.StatusDueForReview || info.Due(now) {
				candidates = append(candidates, info)
			}
		}
	}

	var out []ReviewSentence
	for _, info := range candidates {
		sentences, err := s.priority.Get(ctx, profileID, info.LessonID)
		if err != nil {
			return nil, fmt.Errorf("priority sentences for %s: %w", info.LessonID, err)
		}

		boost := info.RepetitionLevel
		if boost > maxDepthBoost {
			boost = maxDepthBoost
		}
		for _, ps := range sentences {
			out = append(out, ReviewSentence{
				PrioritySentence: ps,
				LessonID:         info.LessonID,
				AdjustedPriority: ps.Priority + boost,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AdjustedPriority > out[j].AdjustedPriority
	})

	return out, nil
}

// explicitCandidate resolves the requested lesson to a review candidate, or
// nil if it is hidden or does not exist. The transient descriptor built for
// an untracked lesson is never persisted.
func (s *ReviewService) explicitCandidate(ctx context.Context, doc *entities.AnalyticsDocument, lessonID string) (*entities.SpacedRepetitionInfo, error) {
	if info := doc.RepetitionInfo(lessonID); info != nil {
		if info.IsHidden {
			return nil, nil
		}
		return info, nil
	}

	if _, err := s.lessonRepo.Get(ctx, lessonID); err != nil {
		if errors.Is(err, repository.ErrLessonNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get lesson: %w", err)
	}

	info := entities.NewSpacedRepetitionInfo(lessonID)
	info.Status = entities.StatusDueForReview
	return info, nil
}
