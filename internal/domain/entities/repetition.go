package entities

import "time"

// ReviewStatus is the lifecycle state of a lesson in the review cycle.
type ReviewStatus string

const (
	StatusNotStarted   ReviewStatus = "not_started"
	StatusInProgress   ReviewStatus = "in_progress"
	StatusCompleted    ReviewStatus = "completed"
	StatusDueForReview ReviewStatus = "due_for_review"
)

// ReviewIntervals is the forgetting-curve schedule in days, indexed by
// repetition level. Level 0 is the first post-learning review on the next
// day, the last level is the quarterly plateau.
var ReviewIntervals = []int{1, 3, 7, 14, 30, 60, 120}

// Error-count thresholds for level adaptation.
const (
	// MaxErrorsToAdvance is the highest error count still counted as a
	// clean pass. Clean first-time completions auto-archive the lesson.
	MaxErrorsToAdvance = 2
	// MaxErrorsToHold is the highest error count that keeps the current
	// cadence. Anything above it pushes the level back by one.
	MaxErrorsToHold = 5
)

// SpacedRepetitionInfo tracks the review state of one lesson for one profile.
// Exactly one record exists per (profile, lesson) pair, keyed by lesson ID
// inside the profile's analytics document.
type SpacedRepetitionInfo struct {
	LessonID        string       `json:"lessonId"`
	Status          ReviewStatus `json:"status"`
	CompletionDates []time.Time  `json:"completionDates,omitempty"` // append-only
	RepetitionLevel int          `json:"repetitionLevel"`
	NextReviewAt    *time.Time   `json:"nextReviewAt,omitempty"` // nil = not scheduled
	IsHidden        bool         `json:"isHidden"`
	LastErrorCount  int          `json:"lastErrorCount"`
}

func NewSpacedRepetitionInfo(lessonID string) *SpacedRepetitionInfo {
	return &SpacedRepetitionInfo{
		LessonID: lessonID,
		Status:   StatusNotStarted,
	}
}

// RecordCompletion appends a completion and recomputes the repetition level
// and next review date from the observed error count.
//
// The tentative level follows the completion count along the interval table
// and plateaus at the last index. Error adaptation: more than MaxErrorsToHold
// errors pushes the level back by one (floor 0), anything up to it keeps the
// tentative level.
func (s *SpacedRepetitionInfo) RecordCompletion(errorCount int, now time.Time) {
	s.CompletionDates = append(s.CompletionDates, now)

	level := len(s.CompletionDates) - 1
	if level > len(ReviewIntervals)-1 {
		level = len(ReviewIntervals) - 1
	}
	if errorCount > MaxErrorsToHold {
		level--
	}
	if level < 0 {
		level = 0
	}
	s.RepetitionLevel = level

	next := now.Add(time.Duration(ReviewIntervals[level]) * 24 * time.Hour)
	s.NextReviewAt = &next
	s.Status = StatusCompleted
	s.LastErrorCount = errorCount
}

// Due reports whether the lesson is reviewable at the given time. Hidden
// lessons are never due, regardless of date.
func (s *SpacedRepetitionInfo) Due(now time.Time) bool {
	if s.IsHidden || s.NextReviewAt == nil {
		return false
	}
	if s.Status != StatusCompleted && s.Status != StatusDueForReview {
		return false
	}
	return !s.NextReviewAt.After(now)
}

// MarkDue flips a completed lesson to due-for-review once its review date has
// passed. The transition is one-way: a record already flipped stays flipped.
// Returns true if the status changed.
func (s *SpacedRepetitionInfo) MarkDue(now time.Time) bool {
	if s.Status != StatusCompleted {
		return false
	}
	if s.IsHidden || s.NextReviewAt == nil || s.NextReviewAt.After(now) {
		return false
	}
	s.Status = StatusDueForReview
	return true
}
