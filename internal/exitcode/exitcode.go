// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown id).
	UserError = 1

	// ConfigError indicates an unusable configuration file or directory.
	ConfigError = 2

	// StorageError indicates a task-file I/O failure other than
	// not-exist (permissions, disk, write failures).
	StorageError = 3
)
