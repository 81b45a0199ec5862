package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/kanban/internal/models"
)

// RenderHeader renders the board title with its task count and the description below
func RenderHeader(board *models.Board, width int) string {
	title := TitleStyle.Render(board.Title) +
		SubtleStyle.Render(fmt.Sprintf("  %d tasks", board.TaskCount()))
	description := SubtleStyle.Render(truncate.StringWithTail(board.Description, uint(max(width-1, 0)), "…"))
	return lipgloss.JoinVertical(lipgloss.Left, title, description, "")
}
