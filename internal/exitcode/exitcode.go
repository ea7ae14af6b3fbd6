// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, validation failure,
	// unknown task id).
	UserError = 1

	// AuthError indicates a command needed an active session and none
	// exists.
	AuthError = 2

	// StorageError indicates a store file read/write error.
	StorageError = 3
)
