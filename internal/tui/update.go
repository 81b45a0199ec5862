package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.clampSelection()
		return m, nil

	case BoardChangedMsg:
		return m.handleBoardChanged(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (cursor blinks, etc.) still belong to an open form
	if m.UiState.Mode() == state.TaskFormMode && m.FormState.TaskForm != nil {
		return m.updateTaskForm(msg)
	}
	return m, nil
}

// handleKey routes a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.GrabMode:
		return m.handleGrabMode(msg)
	case state.TaskFormMode:
		return m.updateTaskForm(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DiscardConfirmMode:
		return m.handleDiscardConfirm(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	}
	return m, nil
}

// handleBoardChanged refreshes the board, shows the event message and waits for the next one
func (m Model) handleBoardChanged(msg BoardChangedMsg) (tea.Model, tea.Cmd) {
	slog.Debug("board change received", "type", msg.Event.Type, "task_id", msg.Event.TaskID, "seq", msg.Event.SequenceID)
	m.refresh()
	if msg.Event.Message != "" {
		m.NotificationState.Add(state.LevelInfo, msg.Event.Message)
	}
	return m, m.subscribeToEvents()
}
