package models

import "errors"

// Board integrity errors, reported when a loaded board breaks one of its invariants
var (
	// ErrDuplicateTaskID indicates two tasks share an id anywhere on the board
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrDuplicateColumnID indicates two columns share an id
	ErrDuplicateColumnID = errors.New("duplicate column id")

	// ErrDuplicateUserID indicates two users share an id
	ErrDuplicateUserID = errors.New("duplicate user id")

	// ErrDuplicateTagID indicates two tags share an id
	ErrDuplicateTagID = errors.New("duplicate tag id")

	// ErrStatusMismatch indicates a task whose status is not its column's title
	ErrStatusMismatch = errors.New("task status does not match its column")

	// ErrUnknownPriority indicates a priority outside low|medium|high|urgent
	ErrUnknownPriority = errors.New("unknown priority")

	// ErrNullEntry indicates a null column, task, user or tag in a list
	ErrNullEntry = errors.New("board has a null list entry")

	// ErrEmptyTaskID indicates a task without an id
	ErrEmptyTaskID = errors.New("task id is empty")

	// ErrEmptyTaskTitle indicates a task whose title is blank
	ErrEmptyTaskTitle = errors.New("task title is empty")
)
