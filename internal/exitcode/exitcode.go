// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task reference).
	UserError = 1

	// ConfigError indicates an invalid config file, environment or flag value.
	ConfigError = 2

	// StorageError indicates the task list could not be opened or written.
	StorageError = 3
)
