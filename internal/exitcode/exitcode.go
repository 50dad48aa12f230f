// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, validation, not found).
	UserError = 1

	// DataError indicates unparseable task data (corrupt import file).
	DataError = 2

	// IOError indicates a read/write failure on the backing file.
	IOError = 3
)
