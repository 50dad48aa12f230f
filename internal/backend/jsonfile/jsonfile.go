// Package jsonfile implements the store.Store interface over a local
// JSON backing file.
//
// The file holds the full task collection as a JSON array and is
// completely rewritten on every save. Two processes writing the same
// file race with last-writer-wins semantics; concurrent invocations are
// not a supported configuration and no locking is attempted.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"todo/internal/config"
	"todo/internal/store"
)

// Store is the file-backed task store.
type Store struct {
	path  string
	tasks []store.Task

	now   func() time.Time
	newID func() string
}

// New creates a Store over the configured backing file without loading it.
func New(cfg *config.Config) *Store {
	return &Store{
		path:  cfg.DataFile,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Open creates a Store and loads the backing file. On a corrupt file the
// returned Store is still usable with an empty collection, alongside the
// CorruptDataError, so callers can warn and carry on.
func Open(cfg *config.Config) (*Store, error) {
	s := New(cfg)
	err := s.Load()
	return s, err
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Add implements store.Store.
func (s *Store) Add(title string, priority store.Priority) (store.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store.Task{}, &store.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !priority.Valid() {
		return store.Task{}, &store.ValidationError{Field: "priority", Reason: fmt.Sprintf("must be High, Medium or Low (got %q)", string(priority))}
	}

	t := store.Task{
		ID:        s.newID(),
		Title:     title,
		Priority:  priority,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, t)

	if err := s.Save(); err != nil {
		return t, err
	}
	return t, nil
}

// Update implements store.Store.
func (s *Store) Update(id string, fields store.Fields) (store.Task, error) {
	i := s.index(id)
	if i < 0 {
		return store.Task{}, store.ErrNotFound
	}

	// Validate everything before touching the task; a partial update
	// must never be applied.
	var title string
	if fields.Title != nil {
		title = strings.TrimSpace(*fields.Title)
		if title == "" {
			return store.Task{}, &store.ValidationError{Field: "title", Reason: "must not be empty"}
		}
	}
	if fields.Priority != nil && !fields.Priority.Valid() {
		return store.Task{}, &store.ValidationError{Field: "priority", Reason: fmt.Sprintf("must be High, Medium or Low (got %q)", string(*fields.Priority))}
	}

	if fields.Title != nil {
		s.tasks[i].Title = title
	}
	if fields.Priority != nil {
		s.tasks[i].Priority = *fields.Priority
	}

	if err := s.Save(); err != nil {
		return s.tasks[i], err
	}
	return s.tasks[i], nil
}

// Delete implements store.Store.
func (s *Store) Delete(id string) error {
	i := s.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.Save()
}

// ToggleComplete implements store.Store.
func (s *Store) ToggleComplete(id string) (store.Task, error) {
	i := s.index(id)
	if i < 0 {
		return store.Task{}, store.ErrNotFound
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	if s.tasks[i].Completed {
		done := s.now()
		s.tasks[i].CompletedAt = &done
	} else {
		s.tasks[i].CompletedAt = nil
	}

	if err := s.Save(); err != nil {
		return s.tasks[i], err
	}
	return s.tasks[i], nil
}

// ClearCompleted implements store.Store.
func (s *Store) ClearCompleted() (int, error) {
	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept
	return removed, s.Save()
}

// List implements store.Store.
func (s *Store) List() []store.Task {
	out := make([]store.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats implements store.Store.
func (s *Store) Stats() store.Stats {
	st := store.Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total)
	}
	return st
}

// Import implements store.Store. All-or-nothing: the collection is only
// touched once every incoming record has passed validation.
func (s *Store) Import(tasks []store.Task, replace bool) (int, error) {
	live := make(map[string]bool, len(s.tasks))
	if !replace {
		for _, t := range s.tasks {
			live[t.ID] = true
		}
	}

	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return 0, &store.ValidationError{
				Field:  fmt.Sprintf("record %d", i),
				Reason: err.Error(),
			}
		}
		if live[t.ID] {
			return 0, &store.ValidationError{
				Field:  fmt.Sprintf("record %d", i),
				Reason: fmt.Sprintf("duplicate id %q", t.ID),
			}
		}
		live[t.ID] = true
	}

	if replace {
		s.tasks = append([]store.Task(nil), tasks...)
	} else {
		s.tasks = append(s.tasks, tasks...)
	}
	return len(tasks), s.Save()
}

// Load implements store.Store. A missing file initializes an empty
// collection. Records missing a priority get Medium, matching files
// written by older versions of the tool; any other invalid record makes
// the whole file corrupt.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.tasks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.tasks = nil
		return &store.CorruptDataError{Path: s.path, Record: -1, Err: err}
	}

	seen := make(map[string]bool, len(tasks))
	for i := range tasks {
		if tasks[i].Priority == "" {
			tasks[i].Priority = store.Medium
		}
		if err := tasks[i].Validate(); err != nil {
			s.tasks = nil
			return &store.CorruptDataError{Path: s.path, Record: i, Err: err}
		}
		if seen[tasks[i].ID] {
			s.tasks = nil
			return &store.CorruptDataError{Path: s.path, Record: i, Err: fmt.Errorf("duplicate id %q", tasks[i].ID)}
		}
		seen[tasks[i].ID] = true
	}

	s.tasks = tasks
	return nil
}

// Save implements store.Store. The file is written to a temp file in the
// same directory and renamed over the old one, so a failed write never
// truncates existing data.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []store.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// index returns the position of the task with the given id, or -1.
func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
