package cli

import (
	"errors"
	"os"

	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/fixture"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file errors, unexpected failures, or any error that doesn't
	// fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, column not found, fixture file missing.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid YAML input, a fixture that breaks board invariants.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid priority values, bad due dates.
	ExitValidation = 5
)

// ExitCodeError carries the exit code a failed command should end the process with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode attaches an exit code to err
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCodeFor returns the exit code for err.
// An explicit ExitCodeError wins; otherwise the code is derived from known sentinel errors.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, os.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fixture.ErrEmptyBoard),
		errors.Is(err, models.ErrDuplicateTaskID),
		errors.Is(err, models.ErrDuplicateColumnID),
		errors.Is(err, models.ErrDuplicateUserID),
		errors.Is(err, models.ErrDuplicateTagID),
		errors.Is(err, models.ErrStatusMismatch),
		errors.Is(err, models.ErrNullEntry),
		errors.Is(err, models.ErrEmptyTaskID),
		errors.Is(err, models.ErrEmptyTaskTitle):
		return ExitDataErr
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrTitleTooLong),
		errors.Is(err, board.ErrInvalidPriority),
		errors.Is(err, models.ErrUnknownPriority),
		errors.Is(err, editor.ErrTitleRequired),
		errors.Is(err, editor.ErrInvalidDueDate):
		return ExitValidation
	}
	return ExitError
}

// DataErrorCode is ExitCodeFor for errors from reading an input file.
// Anything not otherwise classified is treated as malformed data.
func DataErrorCode(err error) int {
	if code := ExitCodeFor(err); code != ExitError {
		return code
	}
	return ExitDataErr
}
