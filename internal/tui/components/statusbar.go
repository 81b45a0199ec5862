package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Mode  string // short mode label, e.g. "NORMAL"
	Hint  string // optional message shown next to the mode
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode badge and hint
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := ModeStyle.Render(props.Mode)
	if props.Hint != "" {
		left += StatusBarStyle.Render(" " + props.Hint)
	}
	right := StatusBarStyle.Render("press ? for help ")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
