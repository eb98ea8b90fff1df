package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

func TestAnalyticsService_LogError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAnalyticsRepo()
	s := NewAnalyticsService(repo)

	entry := entities.ErrorEntry{
		LessonID: "lesson1",
		Sentence: entities.SentencePair{Russian: "Привет", English: "Hi"},
		Errors:   2,
	}
	require.NoError(t, s.LogError(ctx, "p1", entry))

	stored := repo.stored("p1")
	require.NotNil(t, stored)
	require.Len(t, stored.Errors, 1)
	assert.Equal(t, "lesson1", stored.Errors[0].LessonID)
	assert.False(t, stored.Errors[0].Timestamp.IsZero(), "timestamp defaults to now")
}

func TestAnalyticsService_GetProgressSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	repo := newFakeAnalyticsRepo()
	doc := entities.NewAnalyticsDocument()
	doc.MarkCompleted("lesson1")
	doc.MarkCompleted("lesson2")
	doc.LogError(entities.ErrorEntry{LessonID: "lesson1", Errors: 1, Timestamp: past})

	due := entities.NewSpacedRepetitionInfo("lesson1")
	due.RecordCompletion(1, past.Add(-24*time.Hour))
	doc.UpsertRepetitionInfo(due)

	hidden := entities.NewSpacedRepetitionInfo("lesson2")
	hidden.RecordCompletion(0, past)
	hidden.IsHidden = true
	doc.UpsertRepetitionInfo(hidden)

	require.NoError(t, repo.Save(ctx, "p1", doc))

	s := NewAnalyticsService(repo)
	summary, err := s.GetProgressSummary(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.CompletedLessons)
	assert.Equal(t, 2, summary.TrackedLessons)
	assert.Equal(t, 1, summary.HiddenLessons)
	assert.Equal(t, 1, summary.TotalErrors)
	require.NotNil(t, summary.LastCompletedAt)
	assert.Equal(t, past, *summary.LastCompletedAt)
}

func TestAnalyticsService_GetProgressSummary_FreshProfile(t *testing.T) {
	ctx := context.Background()
	s := NewAnalyticsService(newFakeAnalyticsRepo())

	summary, err := s.GetProgressSummary(ctx, "new")
	require.NoError(t, err)

	assert.Zero(t, summary.CompletedLessons)
	assert.Zero(t, summary.TrackedLessons)
	assert.Nil(t, summary.LastCompletedAt)
}
