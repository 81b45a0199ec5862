package events

import "time"

// EventType indicates what kind of board change occurred
type EventType string

const (
	EventTaskAdded     EventType = "task_added"
	EventTaskEdited    EventType = "task_edited"
	EventTaskMoved     EventType = "task_moved"
	EventTaskDeleted   EventType = "task_deleted"
	EventTaskCompleted EventType = "task_completed"
)

// Event represents a successful board mutation.
// Message is the human readable notification shown to the user.
type Event struct {
	Type       EventType `json:"type"`
	TaskID     string    `json:"task_id"`
	ColumnID   string    `json:"column_id,omitempty"` // destination column for moves, adds and completes
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // Monotonically increasing, assigned by the Bus
}
