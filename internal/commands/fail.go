package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/store"
)

// fail prints a store error and returns the matching exit code.
// Validation and not-found errors are user errors; anything else is a
// backing-file I/O failure.
func fail(errOut io.Writer, err error) int {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(errOut, "error: %s\n", verr)
		return exitcode.UserError
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(errOut, "error: task not found")
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
}
