// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"todo/internal/store"
)

// FakeStore is an in-memory implementation of store.Store for testing.
// IDs are deterministic ("task-1", "task-2", ...) and the clock advances
// one minute per call, so ordering assertions are stable.
type FakeStore struct {
	mu    sync.Mutex
	tasks []store.Task
	seq   int
	clock time.Time

	// Saves counts Save calls, including the implicit save after each
	// mutation.
	Saves int

	// Error injection for testing
	AddErr    error
	UpdateErr error
	DeleteErr error
	ToggleErr error
	ClearErr  error
	ImportErr error
	LoadErr   error
	SaveErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		clock: time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC),
	}
}

// Seed adds a task directly, bypassing validation and persistence.
func (f *FakeStore) Seed(title string, priority store.Priority, completed bool) store.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := store.Task{
		ID:        f.nextID(),
		Title:     title,
		Priority:  priority,
		Completed: completed,
		CreatedAt: f.tick(),
	}
	if completed {
		done := f.tick()
		t.CompletedAt = &done
	}
	f.tasks = append(f.tasks, t)
	return t
}

// Add implements store.Store.
func (f *FakeStore) Add(title string, priority store.Priority) (store.Task, error) {
	if f.AddErr != nil {
		return store.Task{}, f.AddErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return store.Task{}, &store.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !priority.Valid() {
		return store.Task{}, &store.ValidationError{Field: "priority", Reason: "must be High, Medium or Low"}
	}

	t := store.Task{
		ID:        f.nextID(),
		Title:     title,
		Priority:  priority,
		CreatedAt: f.tick(),
	}
	f.tasks = append(f.tasks, t)
	f.Saves++
	return t, f.SaveErr
}

// Update implements store.Store.
func (f *FakeStore) Update(id string, fields store.Fields) (store.Task, error) {
	if f.UpdateErr != nil {
		return store.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return store.Task{}, store.ErrNotFound
	}
	if fields.Title != nil {
		title := strings.TrimSpace(*fields.Title)
		if title == "" {
			return store.Task{}, &store.ValidationError{Field: "title", Reason: "must not be empty"}
		}
		f.tasks[i].Title = title
	}
	if fields.Priority != nil {
		if !fields.Priority.Valid() {
			return store.Task{}, &store.ValidationError{Field: "priority", Reason: "must be High, Medium or Low"}
		}
		f.tasks[i].Priority = *fields.Priority
	}
	f.Saves++
	return f.tasks[i], f.SaveErr
}

// Delete implements store.Store.
func (f *FakeStore) Delete(id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return store.ErrNotFound
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	f.Saves++
	return f.SaveErr
}

// ToggleComplete implements store.Store.
func (f *FakeStore) ToggleComplete(id string) (store.Task, error) {
	if f.ToggleErr != nil {
		return store.Task{}, f.ToggleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return store.Task{}, store.ErrNotFound
	}
	f.tasks[i].Completed = !f.tasks[i].Completed
	if f.tasks[i].Completed {
		done := f.tick()
		f.tasks[i].CompletedAt = &done
	} else {
		f.tasks[i].CompletedAt = nil
	}
	f.Saves++
	return f.tasks[i], f.SaveErr
}

// ClearCompleted implements store.Store.
func (f *FakeStore) ClearCompleted() (int, error) {
	if f.ClearErr != nil {
		return 0, f.ClearErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.tasks[:0:0]
	for _, t := range f.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(f.tasks) - len(kept)
	f.tasks = kept
	f.Saves++
	return removed, f.SaveErr
}

// List implements store.Store.
func (f *FakeStore) List() []store.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Stats implements store.Store.
func (f *FakeStore) Stats() store.Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := store.Stats{Total: len(f.tasks)}
	for _, t := range f.tasks {
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

// Import implements store.Store.
func (f *FakeStore) Import(tasks []store.Task, replace bool) (int, error) {
	if f.ImportErr != nil {
		return 0, f.ImportErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	live := make(map[string]bool, len(f.tasks))
	if !replace {
		for _, t := range f.tasks {
			live[t.ID] = true
		}
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return 0, &store.ValidationError{Field: fmt.Sprintf("record %d", i), Reason: err.Error()}
		}
		if live[t.ID] {
			return 0, &store.ValidationError{Field: fmt.Sprintf("record %d", i), Reason: fmt.Sprintf("duplicate id %q", t.ID)}
		}
		live[t.ID] = true
	}

	if replace {
		f.tasks = append([]store.Task(nil), tasks...)
	} else {
		f.tasks = append(f.tasks, tasks...)
	}
	f.Saves++
	return len(tasks), f.SaveErr
}

// Load implements store.Store.
func (f *FakeStore) Load() error {
	return f.LoadErr
}

// Save implements store.Store.
func (f *FakeStore) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Saves++
	return f.SaveErr
}

func (f *FakeStore) index(id string) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (f *FakeStore) nextID() string {
	f.seq++
	return fmt.Sprintf("task-%d", f.seq)
}

func (f *FakeStore) tick() time.Time {
	t := f.clock
	f.clock = f.clock.Add(time.Minute)
	return t
}
