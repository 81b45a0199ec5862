package board

import "errors"

// Board-related errors. Missing ids are not errors: operations on them are no-ops.
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrIDExhausted indicates the id generator kept returning ids already on the board
	ErrIDExhausted = errors.New("could not generate a unique task id")
)
