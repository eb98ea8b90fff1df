package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrInvalidLessonID = errors.New("invalid lesson id")
)

// LessonRepository provides access to lesson content stored as one JSON
// document per lesson under a content directory.
type LessonRepository struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*entities.Lesson
}

// NewLessonRepository creates a repository over the given content directory.
func NewLessonRepository(dir string) (*LessonRepository, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat lessons dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("lessons path %q is not a directory", dir)
	}

	return &LessonRepository{
		dir:   dir,
		cache: make(map[string]*entities.Lesson),
	}, nil
}

// Get retrieves a lesson by ID. Returns ErrLessonNotFound if no document
// exists for it.
func (r *LessonRepository) Get(_ context.Context, id string) (*entities.Lesson, error) {
	if err := validateLessonID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	lesson, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		return lesson, nil
	}

	lesson, err := r.readLesson(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[id] = lesson
	r.mu.Unlock()

	return lesson, nil
}

// List retrieves all lessons in the content directory, ordered by ID.
func (r *LessonRepository) List(_ context.Context) ([]*entities.Lesson, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read lessons dir: %w", err)
	}

	ids := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)

	lessons := make([]*entities.Lesson, 0, len(ids))
	for _, id := range ids {
		lesson, err := r.readLesson(id)
		if err != nil {
			return nil, fmt.Errorf("list lesson %s: %w", id, err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, nil
}

// Save writes the lesson document to disk, overwriting any previous version.
func (r *LessonRepository) Save(_ context.Context, lesson *entities.Lesson) error {
	if err := validateLessonID(lesson.ID); err != nil {
		return err
	}

	data, err := json.MarshalIndent(lesson, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lesson: %w", err)
	}

	if err := os.WriteFile(r.path(lesson.ID), data, 0o644); err != nil {
		return fmt.Errorf("write lesson: %w", err)
	}

	r.mu.Lock()
	r.cache[lesson.ID] = lesson
	r.mu.Unlock()

	return nil
}

func (r *LessonRepository) readLesson(id string) (*entities.Lesson, error) {
	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("read lesson: %w", err)
	}

	var lesson entities.Lesson
	if err := json.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("unmarshal lesson %s: %w", id, err)
	}
	if lesson.ID == "" {
		lesson.ID = id
	}

	return &lesson, nil
}

func (r *LessonRepository) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

// validateLessonID rejects IDs that could escape the content directory.
func validateLessonID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return ErrInvalidLessonID
	}
	return nil
}
