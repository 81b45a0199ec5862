package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// GRAB MODE HANDLERS
// ============================================================================

// handleGrabMode moves the drop target of a grabbed task until it is dropped or cancelled.
// The board is not touched until the drop.
func (m Model) handleGrabMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	grab := m.UiState.Grab()
	if grab == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.PrevColumn, km.MoveTaskLeft, "left":
		m.UiState.MoveGrabTarget(-1, len(m.Snapshot.Columns))
		return m, nil
	case km.NextColumn, km.MoveTaskRight, "right":
		m.UiState.MoveGrabTarget(1, len(m.Snapshot.Columns))
		return m, nil
	case "enter", "space", km.GrabTask:
		taskID, source, target := grab.TaskID, grab.SourceColumn, grab.TargetColumn
		m.UiState.EndGrab()
		if target == source {
			m.UiState.EnsureSelectionVisible(source)
			return m, nil
		}
		return m.moveTo(taskID, target)
	case "esc", km.Quit:
		m.UiState.EndGrab()
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
		return m, nil
	}
	return m, nil
}
