package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
	"github.com/ruslingo/ruslingo/internal/repository"
)

func zapNop() *zap.Logger {
	return zap.NewNop()
}

// fakeAnalyticsRepo mimics the document store: Load returns a deep copy so
// mutations only stick after Save, like the real JSONB round trip.
type fakeAnalyticsRepo struct {
	docs    map[string]*entities.AnalyticsDocument
	loadErr error
	saveErr error
	saves   int
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{docs: make(map[string]*entities.AnalyticsDocument)}
}

func (f *fakeAnalyticsRepo) Load(_ context.Context, profileID string) (*entities.AnalyticsDocument, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	doc, ok := f.docs[profileID]
	if !ok {
		return nil, repository.ErrAnalyticsNotFound
	}
	return cloneDoc(doc), nil
}

func (f *fakeAnalyticsRepo) Save(_ context.Context, profileID string, doc *entities.AnalyticsDocument) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.docs[profileID] = cloneDoc(doc)
	return nil
}

// stored returns the persisted document without the copy-on-load semantics,
// for assertions on what actually got saved.
func (f *fakeAnalyticsRepo) stored(profileID string) *entities.AnalyticsDocument {
	return f.docs[profileID]
}

func cloneDoc(doc *entities.AnalyticsDocument) *entities.AnalyticsDocument {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("clone analytics document: %v", err))
	}
	var out entities.AnalyticsDocument
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone analytics document: %v", err))
	}
	if out.PrioritySentences == nil {
		out.PrioritySentences = make(map[string][]entities.PrioritySentence)
	}
	return &out
}

type fakeLessonRepo struct {
	lessons map[string]*entities.Lesson
}

func newFakeLessonRepo(lessons ...*entities.Lesson) *fakeLessonRepo {
	repo := &fakeLessonRepo{lessons: make(map[string]*entities.Lesson)}
	for _, l := range lessons {
		repo.lessons[l.ID] = l
	}
	return repo
}

func (f *fakeLessonRepo) Get(_ context.Context, id string) (*entities.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, repository.ErrLessonNotFound
	}
	return lesson, nil
}

func (f *fakeLessonRepo) List(_ context.Context) ([]*entities.Lesson, error) {
	out := make([]*entities.Lesson, 0, len(f.lessons))
	for _, l := range f.lessons {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLessonRepo) Save(_ context.Context, lesson *entities.Lesson) error {
	f.lessons[lesson.ID] = lesson
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*entities.Profile
}

func newFakeProfileRepo(profiles ...*entities.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[string]*entities.Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entities.Profile) error {
	if _, ok := f.profiles[profile.ID]; !ok {
		f.profiles[profile.ID] = profile
	}
	return nil
}

func (f *fakeProfileRepo) Get(_ context.Context, id string) (*entities.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) IsAdmin(_ context.Context, id string) (bool, error) {
	p, ok := f.profiles[id]
	if !ok {
		return false, nil
	}
	return p.IsAdmin, nil
}

func (f *fakeProfileRepo) ListWithChat(_ context.Context) ([]*entities.Profile, error) {
	var out []*entities.Profile
	for _, p := range f.profiles {
		if p.ChatID != 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	notifications map[int64]int
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notifications: make(map[int64]int)}
}

func (f *fakeNotifier) NotifyDueLessons(chatID int64, count int) error {
	f.notifications[chatID] = count
	return nil
}

// makeLesson builds a lesson with n bland examples in one concept group.
func makeLesson(id string, n int) *entities.Lesson {
	examples := make([]entities.Example, 0, n)
	for i := 0; i < n; i++ {
		examples = append(examples, entities.Example{
			Russian: fmt.Sprintf("Предложение %d", i),
			English: fmt.Sprintf("Sentence %d", i),
			Source:  id,
		})
	}
	return &entities.Lesson{
		ID:     id,
		Title:  id,
		Groups: []entities.ConceptGroup{{Name: "examples", Examples: examples}},
	}
}
