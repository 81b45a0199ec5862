package models

import (
	"strings"
	"time"
)

// TaskDraft is an uncommitted task as produced by the editor.
// Nil pointer and slice fields are "not provided" and get defaults on commit.
type TaskDraft struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   *time.Time
	Assignees   []string
	Tags        []string
	Comments    []Comment
	Attachments []string
}

// DraftFromTask returns a draft holding a deep copy of every field of the task
func DraftFromTask(t *Task) TaskDraft {
	c := t.Clone()
	created := c.CreatedAt
	return TaskDraft{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    c.Priority,
		DueDate:     c.DueDate,
		CreatedAt:   &created,
		Assignees:   c.Assignees,
		Tags:        c.Tags,
		Comments:    c.Comments,
		Attachments: c.Attachments,
	}
}

// Normalize fills every missing optional field with its default and returns the result.
// Title is trimmed; it is up to the caller to reject an empty one.
func (d TaskDraft) Normalize(now time.Time) TaskDraft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Priority == "" {
		d.Priority = DefaultPriority
	}
	if d.CreatedAt == nil {
		created := now
		d.CreatedAt = &created
	}
	if d.Assignees == nil {
		d.Assignees = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Comments == nil {
		d.Comments = []Comment{}
	}
	if d.Attachments == nil {
		d.Attachments = []string{}
	}
	return d
}

// ToTask builds a complete task from a normalized draft.
// The status is left empty; the board sets it from the containing column.
func (d TaskDraft) ToTask() *Task {
	t := &Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		Assignees:   cloneStrings(d.Assignees),
		Tags:        cloneStrings(d.Tags),
		Attachments: cloneStrings(d.Attachments),
		Comments:    make([]Comment, len(d.Comments)),
	}
	copy(t.Comments, d.Comments)
	if d.DueDate != nil {
		due := *d.DueDate
		t.DueDate = &due
	}
	if d.CreatedAt != nil {
		t.CreatedAt = *d.CreatedAt
	}
	return t
}
