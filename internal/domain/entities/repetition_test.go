package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletion_LevelProgression(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	info := NewSpacedRepetitionInfo("lesson1")

	// Clean passes advance one level per completion.
	for i := 0; i < 3; i++ {
		info.RecordCompletion(0, now)
		assert.Equal(t, i, info.RepetitionLevel)
		assert.Equal(t, i+1, len(info.CompletionDates))
		assert.Equal(t, StatusCompleted, info.Status)
	}

	require.NotNil(t, info.NextReviewAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *info.NextReviewAt)
}

func TestRecordCompletion_ShakyPassKeepsTentativeLevel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	info := NewSpacedRepetitionInfo("lesson1")

	info.RecordCompletion(0, now)
	info.RecordCompletion(4, now) // between thresholds: no regression

	assert.Equal(t, 1, info.RepetitionLevel)
	assert.Equal(t, 4, info.LastErrorCount)
}

func TestRecordCompletion_ErrorRegression(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	info := NewSpacedRepetitionInfo("lesson1")

	for i := 0; i < 3; i++ {
		info.RecordCompletion(0, now)
	}
	// Fourth completion would reach level 3, but 8 errors push it back.
	info.RecordCompletion(8, now)

	assert.Equal(t, 4, len(info.CompletionDates))
	assert.Equal(t, 2, info.RepetitionLevel)
	require.NotNil(t, info.NextReviewAt)
	assert.Equal(t, now.Add(time.Duration(ReviewIntervals[2])*24*time.Hour), *info.NextReviewAt)
}

func TestRecordCompletion_RegressionFloorsAtZero(t *testing.T) {
	now := time.Now()
	info := NewSpacedRepetitionInfo("lesson1")

	info.RecordCompletion(9, now)

	assert.Equal(t, 0, info.RepetitionLevel)
}

func TestRecordCompletion_Plateau(t *testing.T) {
	now := time.Now()
	info := NewSpacedRepetitionInfo("lesson1")

	for i := 0; i < 12; i++ {
		info.RecordCompletion(0, now)
		assert.GreaterOrEqual(t, info.RepetitionLevel, 0)
		assert.LessOrEqual(t, info.RepetitionLevel, len(ReviewIntervals)-1)
	}

	assert.Equal(t, len(ReviewIntervals)-1, info.RepetitionLevel)

	// Another shaky pass at the plateau does not overshoot.
	info.RecordCompletion(5, now)
	assert.Equal(t, len(ReviewIntervals)-1, info.RepetitionLevel)
}

func TestRecordCompletion_AppendsDatesInOrder(t *testing.T) {
	info := NewSpacedRepetitionInfo("lesson1")
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	info.RecordCompletion(1, t1)
	info.RecordCompletion(1, t2)

	require.Len(t, info.CompletionDates, 2)
	assert.Equal(t, t1, info.CompletionDates[0])
	assert.Equal(t, t2, info.CompletionDates[1])
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		info SpacedRepetitionInfo
		want bool
	}{
		{
			name: "completed with past date",
			info: SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &past},
			want: true,
		},
		{
			name: "already flipped to due",
			info: SpacedRepetitionInfo{Status: StatusDueForReview, NextReviewAt: &past},
			want: true,
		},
		{
			name: "future date",
			info: SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &future},
			want: false,
		},
		{
			name: "hidden overrides date",
			info: SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &past, IsHidden: true},
			want: false,
		},
		{
			name: "not started",
			info: SpacedRepetitionInfo{Status: StatusNotStarted},
			want: false,
		},
		{
			name: "no review date scheduled",
			info: SpacedRepetitionInfo{Status: StatusCompleted},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Due(now))
		})
	}
}

func TestMarkDue_OneWayTransition(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	info := &SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &past}

	assert.True(t, info.MarkDue(now))
	assert.Equal(t, StatusDueForReview, info.Status)

	// Re-running is a no-op.
	assert.False(t, info.MarkDue(now))
	assert.Equal(t, StatusDueForReview, info.Status)
}

func TestMarkDue_SkipsHiddenAndFuture(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	hidden := &SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &past, IsHidden: true}
	assert.False(t, hidden.MarkDue(now))
	assert.Equal(t, StatusCompleted, hidden.Status)

	notYet := &SpacedRepetitionInfo{Status: StatusCompleted, NextReviewAt: &future}
	assert.False(t, notYet.MarkDue(now))
	assert.Equal(t, StatusCompleted, notYet.Status)
}
