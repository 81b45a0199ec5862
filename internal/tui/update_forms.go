package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// formChromeHeight is the popup border, padding, title and help lines around the form
const formChromeHeight = 8

// openTaskForm binds a new huh form to the editor and switches to the form mode.
// Reopening with the same editor keeps everything typed so far.
func (m *Model) openTaskForm(ed *editor.Editor) {
	width, height := layers.PopupDimensions(m.UiState.Width(), m.UiState.Height())
	descriptionLines := min(max((height-formChromeHeight)/4, 3), 10)

	m.FormState.Editor = ed
	m.FormState.FormConfirm = true
	m.FormState.TaskForm = huhforms.CreateTaskForm(
		ed,
		m.Snapshot,
		&m.FormState.FormConfirm,
		descriptionLines,
	).
		WithTheme(huhforms.TaskFormTheme(m.Config.ColorScheme, ed.Mode())).
		WithWidth(max(width-6, 20))

	m.UiState.SetMode(state.TaskFormMode)
}

// updateTaskForm handles input while the task editor is open
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.TaskForm == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.FormState.HasTaskFormChanges() {
				m.UiState.SetDiscardContext(&state.DiscardContext{
					SourceMode: state.TaskFormMode,
					Message:    "Discard task?",
				})
				m.UiState.SetMode(state.DiscardConfirmMode)
				return m, nil
			}
			// No changes - allow immediate close
			m.FormState.ClearTaskForm()
			m.UiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen

		case m.Config.KeyMappings.SaveForm:
			// Quick save skips the confirmation field
			return m.submitTaskForm()
		}
	}

	model, cmd := m.FormState.TaskForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.TaskForm = f
	}

	switch m.FormState.TaskForm.State {
	case huh.StateCompleted:
		if !m.FormState.FormConfirm {
			// User selected "No" on confirmation
			m.FormState.ClearTaskForm()
			m.UiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen
		}
		return m.submitTaskForm()
	case huh.StateAborted:
		m.FormState.ClearTaskForm()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	return m, cmd
}

// submitTaskForm validates the editor and hands the draft to the board.
// On failure the form stays open with the user's input.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	ed := m.FormState.Editor
	if ed == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	sub, err := ed.Submit()
	if err == nil {
		var task *models.Task
		task, err = m.Board.SaveTask(sub)
		if err == nil {
			m.FormState.ClearTaskForm()
			m.UiState.SetMode(state.NormalMode)
			m.refresh()
			if task == nil {
				m.NotificationState.Add(state.LevelWarning, "Task no longer exists")
			} else {
				m.selectTask(task.ID)
			}
			return m, tea.ClearScreen
		}
	}

	slog.Warn("Task form rejected", "mode", ed.Mode(), "error", err)
	m.NotificationState.Add(state.LevelError, submitErrorMessage(err))
	m.openTaskForm(ed)
	return m, m.FormState.TaskForm.Init()
}

// submitErrorMessage turns an editor or board error into a short notification
func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, editor.ErrTitleRequired), errors.Is(err, board.ErrEmptyTitle):
		return "Title is required"
	case errors.Is(err, board.ErrTitleTooLong):
		return "Title is too long"
	case errors.Is(err, editor.ErrInvalidDueDate):
		return "Due date must be YYYY-MM-DD"
	case errors.Is(err, models.ErrUnknownPriority), errors.Is(err, board.ErrInvalidPriority):
		return "Unknown priority"
	default:
		return "Failed to save task"
	}
}
