package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/kanban/internal/editor"
)

// FormState holds the task editor and the huh form bound to its fields.
type FormState struct {
	// TaskForm is the huh form instance, nil when no form is open
	TaskForm *huh.Form
	// Editor owns the draft; the form writes straight into its fields
	Editor *editor.Editor
	// FormConfirm is the form's submit confirmation
	FormConfirm bool
}

// NewFormState creates a new FormState with no open form.
func NewFormState() *FormState {
	return &FormState{FormConfirm: true}
}

// IsOpen reports whether an editor is in progress
func (s *FormState) IsOpen() bool {
	return s.Editor != nil
}

// HasTaskFormChanges reports whether closing the form would lose edits
func (s *FormState) HasTaskFormChanges() bool {
	return s.Editor != nil && s.Editor.Dirty()
}

// ClearTaskForm cancels the editor and resets all form fields.
func (s *FormState) ClearTaskForm() {
	if s.Editor != nil {
		s.Editor.Cancel()
	}
	s.TaskForm = nil
	s.Editor = nil
	s.FormConfirm = true
}
