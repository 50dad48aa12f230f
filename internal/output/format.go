// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/store"
)

const (
	// SectionSeparator is the separator line above a listing section.
	SectionSeparator = "------------"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [{mark}] {TITLE} ({PRIORITY})\n"
func FormatTask(w io.Writer, num int, task store.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s (%s)\n", num, mark, normalizeTitle(task.Title), task.Priority)
}

// FormatSectionHeader formats a listing section header.
func FormatSectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
}

// FormatStats formats the aggregate statistics block.
func FormatStats(w io.Writer, stats store.Stats) {
	fmt.Fprintf(w, "total:      %d\n", stats.Total)
	fmt.Fprintf(w, "completed:  %d\n", stats.Completed)
	fmt.Fprintf(w, "pending:    %d\n", stats.Pending)
	fmt.Fprintf(w, "completion: %.1f%%\n", stats.CompletionRate*100)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
