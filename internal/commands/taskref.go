package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todo/internal/store"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task number required")

// ParseTaskRef parses a 1-based task number from args. The number is the
// position printed by the list command: the task's place in insertion
// order, stable across sorted and filtered views.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}

	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	return num, nil
}

// ResolveTaskRef maps a 1-based task number onto the task's id.
func ResolveTaskRef(st store.Store, num int) (store.Task, error) {
	tasks := st.List()
	if num < 1 || num > len(tasks) {
		return store.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
