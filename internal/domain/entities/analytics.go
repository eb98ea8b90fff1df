package entities

import "time"

// SentencePair is the exact Russian/English text of one exercised sentence.
type SentencePair struct {
	Russian string `json:"russian"`
	English string `json:"english"`
}

// ErrorEntry is one logged mistake from a typing or block exercise.
type ErrorEntry struct {
	LessonID  string       `json:"lessonId"`
	Sentence  SentencePair `json:"sentence"`
	Errors    int          `json:"errors"`
	Timestamp time.Time    `json:"timestamp"`
}

// AnalyticsDocument is the whole per-profile learning record: error log,
// completion history, spaced-repetition state and the cached priority
// sentence sets. It is loaded, mutated and saved wholesale on every
// scheduling operation.
type AnalyticsDocument struct {
	Errors            []ErrorEntry                  `json:"errors"`
	CompletedLessons  []string                      `json:"completedLessons"`
	SpacedRepetition  []*SpacedRepetitionInfo       `json:"spacedRepetition"`
	PrioritySentences map[string][]PrioritySentence `json:"prioritySentences"`
}

func NewAnalyticsDocument() *AnalyticsDocument {
	return &AnalyticsDocument{
		PrioritySentences: make(map[string][]PrioritySentence),
	}
}

// RepetitionInfo returns the spaced-repetition record for a lesson, or nil
// if the lesson is not tracked yet.
func (d *AnalyticsDocument) RepetitionInfo(lessonID string) *SpacedRepetitionInfo {
	for _, info := range d.SpacedRepetition {
		if info.LessonID == lessonID {
			return info
		}
	}
	return nil
}

// UpsertRepetitionInfo adds the record, replacing any existing record for
// the same lesson so the document never holds duplicates.
func (d *AnalyticsDocument) UpsertRepetitionInfo(info *SpacedRepetitionInfo) {
	for i, existing := range d.SpacedRepetition {
		if existing.LessonID == info.LessonID {
			d.SpacedRepetition[i] = info
			return
		}
	}
	d.SpacedRepetition = append(d.SpacedRepetition, info)
}

// HasCompleted reports whether the lesson appears in the completion log.
func (d *AnalyticsDocument) HasCompleted(lessonID string) bool {
	for _, id := range d.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// MarkCompleted appends the lesson to the completion log once.
func (d *AnalyticsDocument) MarkCompleted(lessonID string) {
	if !d.HasCompleted(lessonID) {
		d.CompletedLessons = append(d.CompletedLessons, lessonID)
	}
}

// LogError appends an entry to the error log.
func (d *AnalyticsDocument) LogError(entry ErrorEntry) {
	d.Errors = append(d.Errors, entry)
}

// LessonErrorCount returns the number of error-log entries for a lesson.
func (d *AnalyticsDocument) LessonErrorCount(lessonID string) int {
	count := 0
	for _, e := range d.Errors {
		if e.LessonID == lessonID {
			count++
		}
	}
	return count
}

// SentenceErrorCount returns the number of error-log entries matching the
// exact sentence pair within a lesson.
func (d *AnalyticsDocument) SentenceErrorCount(lessonID, russian, english string) int {
	count := 0
	for _, e := range d.Errors {
		if e.LessonID == lessonID && e.Sentence.Russian == russian && e.Sentence.English == english {
			count++
		}
	}
	return count
}
