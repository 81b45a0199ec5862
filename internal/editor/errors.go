package editor

import "errors"

// Editor validation errors
var (
	ErrTitleRequired  = errors.New("task title is required")
	ErrInvalidDueDate = errors.New("due date must be in YYYY-MM-DD format")
	ErrClosed         = errors.New("editor is closed")
)
