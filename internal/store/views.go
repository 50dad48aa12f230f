package store

import (
	"sort"
	"strings"
)

// Sort orders for derived views. Views operate on copies; stored order
// (insertion order) is never mutated, and ties keep insertion order.
const (
	SortNone     = "none"
	SortPriority = "priority"
	SortDate     = "date"
	SortAlpha    = "alpha"
)

// SortTasks returns tasks reordered by the named sort order.
// Unknown orders (including "none") leave insertion order untouched.
func SortTasks(tasks []Task, order string) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j], order)
	})
	return out
}

// Less is the comparator behind SortTasks: priority rank High before
// Medium before Low, creation time ascending, or case-insensitive title.
// Equal tasks (and unknown orders) compare false, so a stable sort keeps
// insertion order for ties.
func Less(a, b Task, order string) bool {
	switch order {
	case SortPriority:
		return a.Priority.Rank() < b.Priority.Rank()
	case SortDate:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortAlpha:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
	return false
}

// ValidSortOrder reports whether order names a supported sort.
func ValidSortOrder(order string) bool {
	switch order {
	case SortNone, SortPriority, SortDate, SortAlpha:
		return true
	}
	return false
}

// Pending returns the tasks that are not completed, in the given order.
func Pending(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the completed tasks, in the given order.
func Completed(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}
