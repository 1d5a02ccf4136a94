// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, missing command, unknown command).
	UserError = 1

	// AuthError indicates an auth or config error.
	AuthError = 2

	// BackendError indicates a Google Tasks API or network error.
	BackendError = 3

	// StorageError indicates the task file could not be saved.
	StorageError = 4
)
