package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, config errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing flags, an update with nothing to change,
	// no board selected.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, column, ticket, checklist or item ids and titles
	// that don't resolve.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a corrupt snapshot, unparseable dates.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty titles, colors outside the palette.
	ExitValidation = 5
)

// StatusError is returned from a command's RunE once the failure has
// already been reported to the user. main turns it into the process
// exit code without printing again.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps a command error to a process exit code. Errors that were
// not reported through a formatter count as ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code
	}
	return ExitError
}
