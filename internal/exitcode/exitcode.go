// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown date/person/task).
	UserError = 1

	// AuthError indicates a credentials/config error.
	AuthError = 2

	// BackendError indicates a remote store/network error.
	BackendError = 3
)
