// Package store defines the task data model and the storage contract.
package store

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

// Allowed priorities, highest first.
const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

// Valid reports whether p is one of the three allowed priorities.
func (p Priority) Valid() bool {
	return p == High || p == Medium || p == Low
}

// Rank returns the sort rank of p. Lower rank sorts first.
func (p Priority) Rank() int {
	switch p {
	case High:
		return 0
	case Medium:
		return 1
	default:
		return 2
	}
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	}
	return "", &ValidationError{Field: "priority", Reason: fmt.Sprintf("must be High, Medium or Low (got %q)", s)}
}

// Task is a single to-do record.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Validate checks the task invariants: non-empty id, non-empty title,
// a known priority, and a set creation time.
func (t Task) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("must be High, Medium or Low (got %q)", string(t.Priority))}
	}
	if t.CreatedAt.IsZero() {
		return &ValidationError{Field: "created_at", Reason: "must be set"}
	}
	return nil
}

// Stats are aggregate counts over the task collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

// Fields is a partial update for Update. Nil fields are left unchanged.
type Fields struct {
	Title    *string
	Priority *Priority
}
