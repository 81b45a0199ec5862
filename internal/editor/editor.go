// Package editor stages edits to a single task and turns them into a
// normalized draft for the board service.
package editor

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Mode tells whether the editor creates a new task or edits an existing one
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Submission is the result of a successful Submit
type Submission struct {
	Mode     Mode
	ColumnID string // target column in create mode, empty in edit mode
	Draft    models.TaskDraft
}

// Editor holds the draft of one task. The exported fields are meant to be
// bound directly to form inputs; the source task is never touched.
type Editor struct {
	Title       string
	Description string
	Priority    string // one of the priority names, empty means default
	DueDate     string // YYYY-MM-DD, empty means no due date
	Assignees   []string
	Tags        []string

	mode     Mode
	columnID string
	initial  snapshot

	// carried through unchanged in edit mode
	id          string
	createdAt   *time.Time
	dueAt       *time.Time // reused while DueDate still shows its day
	comments    []models.Comment
	attachments []string

	now    func() time.Time
	closed bool
}

// snapshot is the comparable state of the editable fields
type snapshot struct {
	title, description, priority, dueDate string
	assignees, tags                       []string
}

// NewCreate opens an empty editor for a task that will be added to the column
func NewCreate(columnID string) *Editor {
	e := &Editor{
		mode:      ModeCreate,
		columnID:  columnID,
		Priority:  string(models.DefaultPriority),
		Assignees: []string{},
		Tags:      []string{},
		now:       time.Now,
	}
	e.initial = e.snapshot()
	return e
}

// NewEdit opens an editor on a copy of the task
func NewEdit(task *models.Task) *Editor {
	d := models.DraftFromTask(task)
	e := &Editor{
		mode:        ModeEdit,
		Title:       d.Title,
		Description: d.Description,
		Priority:    string(d.Priority),
		Assignees:   d.Assignees,
		Tags:        d.Tags,
		id:          d.ID,
		createdAt:   d.CreatedAt,
		comments:    d.Comments,
		attachments: d.Attachments,
		now:         time.Now,
	}
	if d.DueDate != nil {
		e.dueAt = d.DueDate
		e.DueDate = d.DueDate.Format(models.DueDateLayout)
	}
	e.initial = e.snapshot()
	return e
}

// SetClock replaces the clock used to default createdAt
func (e *Editor) SetClock(now func() time.Time) {
	e.now = now
}

// Mode returns whether the editor creates or edits
func (e *Editor) Mode() Mode {
	return e.mode
}

// ColumnID returns the target column of a new task
func (e *Editor) ColumnID() string {
	return e.columnID
}

// TaskID returns the id of the task being edited, empty in create mode
func (e *Editor) TaskID() string {
	return e.id
}

// Closed reports whether the editor was cancelled
func (e *Editor) Closed() bool {
	return e.closed
}

// SetTitle updates the title
func (e *Editor) SetTitle(title string) {
	e.Title = title
}

// SetDescription updates the description
func (e *Editor) SetDescription(description string) {
	e.Description = description
}

// SetPriority updates the priority; the value must name a known priority
func (e *Editor) SetPriority(priority string) error {
	p, err := models.ParsePriority(priority)
	if err != nil {
		return err
	}
	e.Priority = string(p)
	return nil
}

// SetDueDate updates the due date from YYYY-MM-DD text; empty clears it
func (e *Editor) SetDueDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		e.DueDate = ""
		return nil
	}
	if _, err := parseDueDate(value); err != nil {
		return err
	}
	e.DueDate = value
	return nil
}

// ClearDueDate removes the due date
func (e *Editor) ClearDueDate() {
	e.DueDate = ""
}

// SetAssignees replaces the assignee user ids
func (e *Editor) SetAssignees(userIDs []string) {
	e.Assignees = slices.Clone(userIDs)
}

// SetTags replaces the tag ids
func (e *Editor) SetTags(tagIDs []string) {
	e.Tags = slices.Clone(tagIDs)
}

// Dirty reports whether any field differs from when the editor was opened
func (e *Editor) Dirty() bool {
	cur := e.snapshot()
	return cur.title != e.initial.title ||
		cur.description != e.initial.description ||
		cur.priority != e.initial.priority ||
		cur.dueDate != e.initial.dueDate ||
		!slices.Equal(cur.assignees, e.initial.assignees) ||
		!slices.Equal(cur.tags, e.initial.tags)
}

// Submit validates the draft and returns it with every optional field defaulted.
// On error the editor keeps its state so the user can fix the input.
func (e *Editor) Submit() (Submission, error) {
	if e.closed {
		return Submission{}, ErrClosed
	}

	title := strings.TrimSpace(e.Title)
	if title == "" {
		return Submission{}, ErrTitleRequired
	}

	priority := models.DefaultPriority
	if strings.TrimSpace(e.Priority) != "" {
		p, err := models.ParsePriority(e.Priority)
		if err != nil {
			return Submission{}, err
		}
		priority = p
	}

	var due *time.Time
	switch dueText := strings.TrimSpace(e.DueDate); {
	case dueText == "":
	case e.dueAt != nil && dueText == e.initial.dueDate:
		d := *e.dueAt
		due = &d
	default:
		d, err := parseDueDate(dueText)
		if err != nil {
			return Submission{}, err
		}
		due = &d
	}

	description := e.Description
	if strings.TrimSpace(description) == "" {
		description = ""
	}

	draft := models.TaskDraft{
		ID:          e.id,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     due,
		CreatedAt:   e.createdAt,
		Assignees:   slices.Clone(e.Assignees),
		Tags:        slices.Clone(e.Tags),
		Comments:    slices.Clone(e.comments),
		Attachments: slices.Clone(e.attachments),
	}.Normalize(e.now())

	sub := Submission{Mode: e.mode, Draft: draft}
	if e.mode == ModeCreate {
		sub.ColumnID = e.columnID
	}
	return sub, nil
}

// Cancel discards the draft. The editor cannot be submitted afterwards.
func (e *Editor) Cancel() {
	e.closed = true
	e.dueAt = nil
	e.Title = ""
	e.Description = ""
	e.DueDate = ""
	e.Assignees = nil
	e.Tags = nil
}

func (e *Editor) snapshot() snapshot {
	return snapshot{
		title:       e.Title,
		description: e.Description,
		priority:    e.Priority,
		dueDate:     e.DueDate,
		assignees:   slices.Clone(e.Assignees),
		tags:        slices.Clone(e.Tags),
	}
}

func parseDueDate(value string) (time.Time, error) {
	d, err := time.Parse(models.DueDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
	}
	return d, nil
}
