package models

import (
	"fmt"
	"strings"
)

// Board is the whole workspace: ordered columns plus the users and tags tasks refer to
type Board struct {
	ID          string    `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description" json:"description"`
	Columns     []*Column `yaml:"columns" json:"columns"`
	Users       []*User   `yaml:"users" json:"users"`
	Tags        []*Tag    `yaml:"tags" json:"tags"`
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	c := &Board{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Columns:     make([]*Column, 0, len(b.Columns)),
		Users:       make([]*User, 0, len(b.Users)),
		Tags:        make([]*Tag, 0, len(b.Tags)),
	}
	for _, col := range b.Columns {
		tasks := make([]*Task, 0, len(col.Tasks))
		for _, t := range col.Tasks {
			tasks = append(tasks, t.Clone())
		}
		c.Columns = append(c.Columns, &Column{ID: col.ID, Title: col.Title, Tasks: tasks})
	}
	for _, u := range b.Users {
		user := *u
		c.Users = append(c.Users, &user)
	}
	for _, t := range b.Tags {
		tag := *t
		c.Tags = append(c.Tags, &tag)
	}
	return c
}

// TaskCount returns the number of tasks across all columns
func (b *Board) TaskCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Tasks)
	}
	return n
}

// FindTask scans the columns in order and returns the first task with the id
// together with the column holding it. Both are nil when no task matches.
func (b *Board) FindTask(taskID string) (*Task, *Column) {
	for _, col := range b.Columns {
		if i := col.IndexOf(taskID); i >= 0 {
			return col.Tasks[i], col
		}
	}
	return nil, nil
}

// Column returns the column with the id, or nil
func (b *Board) Column(columnID string) *Column {
	for _, col := range b.Columns {
		if col.ID == columnID {
			return col
		}
	}
	return nil
}

// ColumnByTitle returns the first column whose title matches exactly, or nil
func (b *Board) ColumnByTitle(title string) *Column {
	for _, col := range b.Columns {
		if col.Title == title {
			return col
		}
	}
	return nil
}

// ColumnIndex returns the position of the column, or -1
func (b *Board) ColumnIndex(columnID string) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// User returns the user with the id, or nil
func (b *Board) User(userID string) *User {
	for _, u := range b.Users {
		if u.ID == userID {
			return u
		}
	}
	return nil
}

// Tag returns the tag with the id, or nil
func (b *Board) Tag(tagID string) *Tag {
	for _, t := range b.Tags {
		if t.ID == tagID {
			return t
		}
	}
	return nil
}

// AssignedCount returns how many tasks list the user as an assignee
func (b *Board) AssignedCount(userID string) int {
	n := 0
	for _, col := range b.Columns {
		for _, t := range col.Tasks {
			if t.HasAssignee(userID) {
				n++
			}
		}
	}
	return n
}

// Validate checks the board invariants: no null entries, unique ids in every
// collection, board-wide unique task ids, non-blank task titles, known
// priorities, and status equal to column title.
func (b *Board) Validate() error {
	columnIDs := make(map[string]struct{}, len(b.Columns))
	taskIDs := make(map[string]struct{})
	for i, col := range b.Columns {
		if col == nil {
			return fmt.Errorf("%w: column %d", ErrNullEntry, i)
		}
		if _, dup := columnIDs[col.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnID, col.ID)
		}
		columnIDs[col.ID] = struct{}{}

		for j, t := range col.Tasks {
			if t == nil {
				return fmt.Errorf("%w: task %d of column %s", ErrNullEntry, j, col.ID)
			}
			if t.ID == "" {
				return fmt.Errorf("%w: task %d of column %s", ErrEmptyTaskID, j, col.ID)
			}
			if _, dup := taskIDs[t.ID]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateTaskID, t.ID)
			}
			taskIDs[t.ID] = struct{}{}
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("%w: %s", ErrEmptyTaskTitle, t.ID)
			}
			if t.Status != col.Title {
				return fmt.Errorf("%w: task %s has status %q in column %q", ErrStatusMismatch, t.ID, t.Status, col.Title)
			}
			if !t.Priority.Valid() {
				return fmt.Errorf("%w: task %s has priority %q", ErrUnknownPriority, t.ID, t.Priority)
			}
		}
	}

	userIDs := make(map[string]struct{}, len(b.Users))
	for i, u := range b.Users {
		if u == nil {
			return fmt.Errorf("%w: user %d", ErrNullEntry, i)
		}
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateUserID, u.ID)
		}
		userIDs[u.ID] = struct{}{}
	}

	tagIDs := make(map[string]struct{}, len(b.Tags))
	for i, t := range b.Tags {
		if t == nil {
			return fmt.Errorf("%w: tag %d", ErrNullEntry, i)
		}
		if _, dup := tagIDs[t.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateTagID, t.ID)
		}
		tagIDs[t.ID] = struct{}{}
	}
	return nil
}
