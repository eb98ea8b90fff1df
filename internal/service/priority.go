package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
)

// Priority scoring weights.
const (
	basePriority         = 1
	maxErrorBump         = 10 // error history contributes at most this much
	keyConstructionBump  = 5
	frequentPhraseBump   = 3
	maxFullSelectionSize = 5 // lessons this small keep every example
)

// Note markers as authored in lesson content. Matching is a plain
// case-sensitive substring check, both spellings count.
var (
	keyConstructionMarkers = []string{"key construction", "ключевая конструкция"}
	frequentPhraseMarkers  = []string{"frequent phrase", "частая фраза"}
)

// PriorityService ranks a lesson's example sentences by learning difficulty
// and maintains the persisted per-lesson selection. Scores are recomputed
// fresh from the current error log on every Select call; the persisted set
// is only refreshed by an explicit Save.
type PriorityService struct {
	lessonRepo    LessonRepository
	analyticsRepo AnalyticsRepository
}

func NewPriorityService(lessonRepo LessonRepository, analyticsRepo AnalyticsRepository) *PriorityService {
	return &PriorityService{
		lessonRepo:    lessonRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Select computes the current priority subset of a lesson's examples.
// Returns an empty set if the lesson is missing or has no examples.
// Pure selection: nothing is persisted.
func (s *PriorityService) Select(ctx context.Context, profileID, lessonID string) ([]entities.PrioritySentence, error) {
	lesson, err := s.lessonRepo.Get(ctx, lessonID)
	if err != nil {
		if errors.Is(err, repository.ErrLessonNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("get lesson: %w", err)
	}

	examples := lesson.Examples()
	if len(examples) == 0 {
		return nil, nil
	}

	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	sentences := make([]entities.PrioritySentence, 0, len(examples))
	for _, ex := range examples {
		errorCount := doc.SentenceErrorCount(lessonID, ex.Russian, ex.English)
		sentences = append(sentences, entities.PrioritySentence{
			ID:         entities.SentenceID(lessonID, ex.Russian, ex.English),
			Russian:    ex.Russian,
			English:    ex.English,
			Priority:   scoreExample(ex, errorCount),
			ErrorCount: errorCount,
			Source:     ex.Source,
		})
	}

	// Stable sort keeps authored order between equal priorities.
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].Priority > sentences[j].Priority
	})

	return sentences[:selectionSize(len(examples))], nil
}

// Save recomputes the selection and persists it, overwriting any prior set
// for the lesson.
func (s *PriorityService) Save(ctx context.Context, profileID, lessonID string) ([]entities.PrioritySentence, error) {
	sentences, err := s.Select(ctx, profileID, lessonID)
	if err != nil {
		return nil, err
	}

	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	if doc.PrioritySentences == nil {
		doc.PrioritySentences = make(map[string][]entities.PrioritySentence)
	}
	doc.PrioritySentences[lessonID] = sentences

	if err := s.analyticsRepo.Save(ctx, profileID, doc); err != nil {
		return nil, fmt.Errorf("save analytics: %w", err)
	}

	return sentences, nil
}

// Get returns the persisted selection, computing and persisting it on first
// read. Later error-log changes do not invalidate the cached set, only an
// explicit Save refreshes the ranking.
func (s *PriorityService) Get(ctx context.Context, profileID, lessonID string) ([]entities.PrioritySentence, error) {
	doc, err := loadDocument(ctx, s.analyticsRepo, profileID)
	if err != nil {
		return nil, err
	}

	if sentences, ok := doc.PrioritySentences[lessonID]; ok {
		return sentences, nil
	}

	return s.Save(ctx, profileID, lessonID)
}

// scoreExample computes the base priority of one example: every sentence
// starts at 1, error history adds up to maxErrorBump, authored note markers
// add fixed bumps for key constructions and frequent phrases.
func scoreExample(ex entities.Example, errorCount int) int {
	priority := basePriority

	if errorCount > 0 {
		bump := errorCount * 2
		if bump > maxErrorBump {
			bump = maxErrorBump
		}
		priority += bump
	}

	if containsAny(ex.Note, keyConstructionMarkers) {
		priority += keyConstructionBump
	}
	if containsAny(ex.Note, frequentPhraseMarkers) {
		priority += frequentPhraseBump
	}

	return priority
}

// selectionSize returns how many sentences to keep: short lessons keep every
// example, longer lessons keep the top fifth.
func selectionSize(total int) int {
	if total <= maxFullSelectionSize {
		return total
	}
	return (total + 4) / 5 // ceil(total / 5)
}

func containsAny(note string, markers []string) bool {
	if note == "" {
		return false
	}
	for _, m := range markers {
		if strings.Contains(note, m) {
			return true
		}
	}
	return false
}
