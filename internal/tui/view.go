package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/notifications"
	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Always show the board with modal overlays and toasts on top
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewKanbanBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modalLayer = m.renderTaskFormLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	case state.DetailMode:
		modalLayer = m.renderDetailLayer()
	case state.DeleteConfirmMode:
		modalLayer = m.renderDeleteConfirmLayer()
	case state.DiscardConfirmMode:
		modalLayer = m.renderDiscardConfirmLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer.Z(1))
	}

	if !m.compactNotifications() {
		for _, toast := range m.NotificationState.GetLayers(notifications.RenderFromState) {
			layers = append(layers, toast.Z(2))
		}
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewKanbanBoard renders the header, the visible columns, the sidebar and the status bar
func (m Model) viewKanbanBoard() string {
	width := m.UiState.Width()
	header := components.RenderHeader(m.Snapshot, width)
	footer := components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Mode:  m.UiState.Mode().String(),
		Hint:  m.statusHint(),
	})

	if len(m.Snapshot.Columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "No columns on this board.", "", footer)
	}

	columnHeight := m.UiState.ContentHeight()
	grab := m.UiState.Grab()

	endIdx := min(m.UiState.ViewportOffset()+m.UiState.ViewportSize(), len(m.Snapshot.Columns))
	var columns []string
	for i, col := range m.Snapshot.Columns[m.UiState.ViewportOffset():endIdx] {
		globalIndex := m.UiState.ViewportOffset() + i

		props := components.ColumnProps{
			Board:        m.Snapshot,
			Column:       col,
			Selected:     globalIndex == m.UiState.SelectedColumn() && grab == nil,
			SelectedTask: m.UiState.SelectedTask(),
			Height:       columnHeight,
			ScrollOffset: m.UiState.TaskScrollOffset(col.ID),
			Now:          m.now(),
		}
		if grab != nil {
			props.GrabbedTaskID = grab.TaskID
			if globalIndex == grab.TargetColumn && grab.TargetColumn != grab.SourceColumn {
				if task, _ := m.Snapshot.FindTask(grab.TaskID); task != nil {
					props.Ghost = task.Title
				}
			}
		}
		columns = append(columns, components.RenderColumn(props))
	}

	left, right := " ", " "
	if m.UiState.ViewportOffset() > 0 {
		left = components.IndicatorStyle.Render("◀")
	}
	if endIdx < len(m.Snapshot.Columns) {
		right = components.IndicatorStyle.Render("▶")
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", lipgloss.JoinHorizontal(lipgloss.Top, columns...), " ", right)

	if m.UiState.SidebarVisible() {
		sidebar := components.RenderSidebar(m.Snapshot, state.SidebarWidth-2, columnHeight)
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", sidebar)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, board)

	// Constrain content to fit terminal height, leaving room for footer
	contentLines := strings.Split(content, "\n")
	maxContentLines := max(m.UiState.Height()-1, 1)
	if len(contentLines) > maxContentLines {
		contentLines = contentLines[:maxContentLines]
	}

	return strings.Join(contentLines, "\n") + "\n" + footer
}

// compactNotifications reports whether the screen is too narrow for floating toasts.
// The latest notification is then shown in the status bar.
func (m Model) compactNotifications() bool {
	return m.UiState.Width() < state.ColumnWidth+notifications.MaxToastWidth
}

// statusHint describes what the keys do in the current mode
func (m Model) statusHint() string {
	if m.compactNotifications() {
		if last, ok := m.NotificationState.Last(); ok {
			return notifications.RenderInlineFromState(last)
		}
	}

	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.GrabMode:
		if grab := m.UiState.Grab(); grab != nil && grab.TargetColumn < len(m.Snapshot.Columns) {
			return "drop into " + m.Snapshot.Columns[grab.TargetColumn].Title + " (enter) · esc cancels"
		}
	case state.TaskFormMode:
		return km.SaveForm + " saves · esc closes"
	case state.DetailMode:
		return km.EditTask + " edits · esc closes"
	}
	return ""
}
