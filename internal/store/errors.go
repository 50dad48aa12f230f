package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references a task id that
// does not exist in the collection.
var ErrNotFound = errors.New("task not found")

// ValidationError reports bad input to a mutation. The operation is
// rejected and the collection is left unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CorruptDataError reports a backing file that exists but does not parse
// as the expected record format. Callers are expected to fall back to an
// empty collection and surface a warning rather than fail the process.
type CorruptDataError struct {
	Path   string
	Record int // index of the offending record, -1 if the file itself is unreadable as JSON
	Err    error
}

func (e *CorruptDataError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("corrupt task file %s: record %d: %v", e.Path, e.Record, e.Err)
	}
	return fmt.Sprintf("corrupt task file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }
