package store_test

import (
	"testing"
	"time"

	"todo/internal/store"
)

func mkTask(id, title string, p store.Priority, created time.Time) store.Task {
	return store.Task{ID: id, Title: title, Priority: p, CreatedAt: created}
}

func ids(tasks []store.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func wantIDs(t *testing.T, tasks []store.Task, want ...string) {
	t.Helper()
	got := ids(tasks)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func TestSortTasks_Priority(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []store.Task{
		mkTask("a", "one", store.Low, base),
		mkTask("b", "two", store.High, base.Add(time.Minute)),
		mkTask("c", "three", store.Medium, base.Add(2*time.Minute)),
		mkTask("d", "four", store.High, base.Add(3*time.Minute)),
	}

	sorted := store.SortTasks(tasks, store.SortPriority)

	// High > Medium > Low; the two Highs keep insertion order.
	wantIDs(t, sorted, "b", "d", "c", "a")

	// Input untouched (derived views never mutate stored order).
	wantIDs(t, tasks, "a", "b", "c", "d")
}

func TestSortTasks_Date(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []store.Task{
		mkTask("a", "one", store.Low, base.Add(2*time.Minute)),
		mkTask("b", "two", store.High, base),
		mkTask("c", "three", store.Medium, base.Add(time.Minute)),
	}

	sorted := store.SortTasks(tasks, store.SortDate)
	wantIDs(t, sorted, "b", "c", "a")
}

func TestSortTasks_Alpha_CaseInsensitive(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []store.Task{
		mkTask("a", "banana", store.Low, base),
		mkTask("b", "Apple", store.High, base),
		mkTask("c", "cherry", store.Medium, base),
		mkTask("d", "apple", store.Medium, base),
	}

	sorted := store.SortTasks(tasks, store.SortAlpha)

	// "Apple" and "apple" tie case-insensitively; insertion order breaks it.
	wantIDs(t, sorted, "b", "d", "a", "c")
}

func TestSortTasks_None_KeepsInsertionOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []store.Task{
		mkTask("a", "zz", store.Low, base.Add(time.Hour)),
		mkTask("b", "aa", store.High, base),
	}

	sorted := store.SortTasks(tasks, store.SortNone)
	wantIDs(t, sorted, "a", "b")
}

func TestPendingCompleted(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	done := mkTask("b", "two", store.High, base)
	done.Completed = true
	tasks := []store.Task{
		mkTask("a", "one", store.Low, base),
		done,
		mkTask("c", "three", store.Medium, base),
	}

	wantIDs(t, store.Pending(tasks), "a", "c")
	wantIDs(t, store.Completed(tasks), "b")
}

func TestValidSortOrder(t *testing.T) {
	for _, order := range []string{store.SortNone, store.SortPriority, store.SortDate, store.SortAlpha} {
		if !store.ValidSortOrder(order) {
			t.Errorf("expected %q to be a valid sort order", order)
		}
	}
	if store.ValidSortOrder("size") {
		t.Error("expected \"size\" to be rejected")
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in   string
		want store.Priority
	}{
		{"High", store.High},
		{"high", store.High},
		{"MEDIUM", store.Medium},
		{" low ", store.Low},
	}
	for _, c := range cases {
		got, err := store.ParsePriority(c.in)
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := store.ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestTaskValidate(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	valid := mkTask("a", "one", store.Low, base)
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error for valid task: %v", err)
	}

	cases := []struct {
		name string
		task store.Task
	}{
		{"empty id", mkTask("", "one", store.Low, base)},
		{"empty title", mkTask("a", "  ", store.Low, base)},
		{"bad priority", mkTask("a", "one", store.Priority("Urgent"), base)},
		{"zero created_at", mkTask("a", "one", store.Low, time.Time{})},
	}
	for _, c := range cases {
		if err := c.task.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
