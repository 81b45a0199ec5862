package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteConfirm handles task deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteTask()
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteTask performs the actual task deletion.
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	if err := m.Board.DeleteTask(task.ID); err != nil {
		slog.Error("Error deleting task", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to delete task")
		return m, nil
	}
	m.refresh()
	return m, nil
}

// handleDiscardConfirm handles discard confirmation for the task editor.
func (m Model) handleDiscardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	ctx := m.UiState.DiscardContext()
	if ctx == nil {
		// Safety: if context is missing, return to normal mode
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		m.FormState.ClearTaskForm()
		m.UiState.ClearDiscardContext()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen

	case "n", "N", "esc":
		// User cancelled - return to source mode without clearing
		m.UiState.SetMode(ctx.SourceMode)
		m.UiState.ClearDiscardContext()
		return m, nil
	}

	return m, nil
}
