package models

import (
	"slices"
	"time"
)

// Task represents a single task in the kanban board
type Task struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Status      string     `yaml:"status" json:"status"` // always the title of the containing column
	Priority    Priority   `yaml:"priority" json:"priority"`
	DueDate     *time.Time `yaml:"due_date" json:"due_date"`
	CreatedAt   time.Time  `yaml:"created_at" json:"created_at"`
	Assignees   []string   `yaml:"assignees" json:"assignees"` // user ids, duplicates allowed
	Tags        []string   `yaml:"tags" json:"tags"`           // tag ids
	Comments    []Comment  `yaml:"comments" json:"comments"`
	Attachments []string   `yaml:"attachments" json:"attachments"`
}

// Clone returns a deep copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	c.Assignees = cloneStrings(t.Assignees)
	c.Tags = cloneStrings(t.Tags)
	c.Attachments = cloneStrings(t.Attachments)
	c.Comments = make([]Comment, len(t.Comments))
	copy(c.Comments, t.Comments)
	return &c
}

// IsOverdue reports whether the task has a due date strictly before the day of now
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today)
}

// HasAssignee reports whether the user is among the task's assignees
func (t *Task) HasAssignee(userID string) bool {
	return slices.Contains(t.Assignees, userID)
}

// cloneStrings copies s, always returning a non-nil slice
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
