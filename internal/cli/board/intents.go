package board

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/models"
	boardsvc "github.com/thenoetrevino/kanban/internal/services/board"
	"gopkg.in/yaml.v3"
)

// Action names a board operation an intent asks for
type Action string

const (
	ActionMove     Action = "move"
	ActionAdd      Action = "add"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
	ActionComplete Action = "complete"
)

var (
	errUnknownAction = errors.New("unknown action")
	errMissingTask   = errors.New("intent needs a task id")
	errMissingColumn = errors.New("intent needs a column")
	errNoDoneColumn  = errors.New("board has no done column")
)

// Intent is one requested change read from an intents file.
// Nil fields are left unchanged by edit.
type Intent struct {
	Action      Action   `yaml:"action" json:"action"`
	Task        string   `yaml:"task,omitempty" json:"task,omitempty"`
	Column      string   `yaml:"column,omitempty" json:"column,omitempty"`
	Title       *string  `yaml:"title,omitempty" json:"title,omitempty"`
	Description *string  `yaml:"description,omitempty" json:"description,omitempty"`
	Priority    *string  `yaml:"priority,omitempty" json:"priority,omitempty"`
	DueDate     *string  `yaml:"due_date,omitempty" json:"due_date,omitempty"`
	Assignees   []string `yaml:"assignees,omitempty" json:"assignees,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Outcome of applying a single intent
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeSkipped Outcome = "skipped" // the task no longer exists or nothing changed
	OutcomeFailed  Outcome = "failed"
)

// Result reports what happened to one intent
type Result struct {
	Index   int     `json:"index"`
	Action  Action  `json:"action"`
	TaskID  string  `json:"task_id,omitempty"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
}

// ReadIntents decodes a YAML list of intents from path; "-" reads stdin
func ReadIntents(path string, stdin io.Reader) ([]Intent, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open intents: %w", err)
		}
		defer f.Close()
		r = f
	}
	return DecodeIntents(r)
}

// DecodeIntents reads a YAML list of intents
func DecodeIntents(r io.Reader) ([]Intent, error) {
	var intents []Intent
	if err := yaml.NewDecoder(r).Decode(&intents); err != nil {
		if errors.Is(err, io.EOF) {
			return []Intent{}, nil
		}
		return nil, fmt.Errorf("failed to parse intents: %w", err)
	}
	for i := range intents {
		intents[i].Action = Action(strings.ToLower(strings.TrimSpace(string(intents[i].Action))))
	}
	return intents, nil
}

// Apply runs one intent against the board service
func Apply(svc boardsvc.Service, in Intent) (*models.Task, error) {
	switch in.Action {
	case ActionMove:
		if in.Task == "" {
			return nil, errMissingTask
		}
		col, err := resolveColumn(svc, in.Column)
		if err != nil {
			return nil, err
		}
		return svc.MoveTask(in.Task, col.ID)

	case ActionComplete:
		if in.Task == "" {
			return nil, errMissingTask
		}
		if svc.DoneColumnID() == "" {
			return nil, errNoDoneColumn
		}
		return svc.CompleteTask(in.Task)

	case ActionDelete:
		if in.Task == "" {
			return nil, errMissingTask
		}
		task, ok := svc.Task(in.Task)
		if !ok {
			return nil, nil
		}
		return task, svc.DeleteTask(in.Task)

	case ActionAdd:
		col, err := resolveColumn(svc, in.Column)
		if err != nil {
			return nil, err
		}
		ed := editor.NewCreate(col.ID)
		if err := fill(ed, in); err != nil {
			return nil, err
		}
		return submit(svc, ed)

	case ActionEdit:
		if in.Task == "" {
			return nil, errMissingTask
		}
		task, ok := svc.Task(in.Task)
		if !ok {
			return nil, nil
		}
		ed := editor.NewEdit(task)
		if err := fill(ed, in); err != nil {
			return nil, err
		}
		return submit(svc, ed)
	}
	return nil, fmt.Errorf("%w %q", errUnknownAction, in.Action)
}

func resolveColumn(svc boardsvc.Service, ref string) (*models.Column, error) {
	if ref == "" {
		return nil, errMissingColumn
	}
	return cli.ResolveColumn(svc.Snapshot(), ref)
}

// fill copies the provided intent fields into the editor
func fill(ed *editor.Editor, in Intent) error {
	if in.Title != nil {
		ed.SetTitle(*in.Title)
	}
	if in.Description != nil {
		ed.SetDescription(*in.Description)
	}
	if in.Priority != nil {
		if err := ed.SetPriority(*in.Priority); err != nil {
			return err
		}
	}
	if in.DueDate != nil {
		if err := ed.SetDueDate(*in.DueDate); err != nil {
			return err
		}
	}
	if in.Assignees != nil {
		ed.SetAssignees(in.Assignees)
	}
	if in.Tags != nil {
		ed.SetTags(in.Tags)
	}
	return nil
}

func submit(svc boardsvc.Service, ed *editor.Editor) (*models.Task, error) {
	sub, err := ed.Submit()
	if err != nil {
		return nil, err
	}
	return svc.SaveTask(sub)
}
