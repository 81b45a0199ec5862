package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// RenderSidebar renders the team panel: each member with role and open task count
func RenderSidebar(board *models.Board, width, height int) string {
	parts := []string{TitleStyle.Render("Team"), ""}

	if len(board.Users) == 0 {
		parts = append(parts, SubtleStyle.Italic(true).Render("No members"))
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	badgeStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Background)).
		Bold(true)

	for _, u := range board.Users {
		badge := badgeStyle.Render(fmt.Sprintf("%-2s", u.Initials()))
		parts = append(parts,
			badge+" "+nameStyle.Render(truncate(u.Name, width-7)),
			SubtleStyle.Render(fmt.Sprintf("   %s · %d tasks", u.Role, board.AssignedCount(u.ID))),
		)
	}

	style := SidebarStyle.Width(width)
	if height > 0 {
		style = style.Height(height - 2)
	}
	return style.Render(strings.Join(parts, "\n"))
}
