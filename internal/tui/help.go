package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// HELP AND DETAIL MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// handleDetailMode handles input in the read-only task view.
// The edit key jumps straight into the editor for the viewed task.
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.ViewTask, km.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case km.EditTask:
		task := m.getCurrentTask()
		m.UiState.SetMode(state.NormalMode)
		if task == nil {
			return m, nil
		}
		return m.openEditor(task)
	}
	return m, nil
}
