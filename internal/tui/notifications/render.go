package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// MaxToastWidth is the widest a toast message may get before wrapping
const MaxToastWidth = 40

// Render renders a toast with a header line and the wrapped message
func Render(severity Severity, message string) string {
	st := severity.style()

	message = wordwrap.String(message, MaxToastWidth)
	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a toast from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(SeverityOf(n.Level), n.Message)
}

// RenderInline renders a compact single-line notification for the status bar
func RenderInline(severity Severity, message string) string {
	st := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(st.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(SeverityOf(n.Level), n.Message)
}
