package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

type TaskViewProps struct {
	Task        *models.Task
	Board       *models.Board
	PopupWidth  int
	PopupHeight int
	Now         time.Time
}

// RenderTaskView renders the read-only detail popup of a task:
// title, description and comments on the left, metadata on the right.
func RenderTaskView(props TaskViewProps) string {
	task := props.Task

	contentWidth := max(props.PopupWidth-8, 20)
	leftColWidth := (contentWidth * 70) / 100
	rightColWidth := contentWidth - leftColWidth - 1

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	leftParts := []string{
		titleStyle.Render(task.Title),
		"",
		RenderDescription(DescriptionProps{Description: task.Description, Width: leftColWidth - 2}),
	}

	if len(task.Comments) > 0 {
		leftParts = append(leftParts, "", sectionHeader(fmt.Sprintf("Comments (%d)", len(task.Comments))))
		for _, c := range task.Comments {
			leftParts = append(leftParts, RenderComment(c, props.Board, leftColWidth-2))
		}
	}

	leftParts = append(leftParts, "", SubtleStyle.Render("[e] edit  [Esc/Space] close"))

	leftColumn := lipgloss.NewStyle().
		Width(leftColWidth).
		Padding(0, 1).
		Render(strings.Join(leftParts, "\n"))

	rightColumn := renderMetadataColumn(task, props.Board, props.Now, rightColWidth)

	return DetailBoxStyle.
		Width(props.PopupWidth).
		Height(props.PopupHeight).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn))
}

// RenderComment renders a comment with its author and time, wrapped to width.
// Unknown authors are shown by id.
func RenderComment(c models.Comment, board *models.Board, width int) string {
	author := c.UserID
	if u := board.User(c.UserID); u != nil {
		author = u.Name
	}

	authorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))
	header := authorStyle.Render(author) + SubtleStyle.Render(" · "+c.CreatedAt.Format("Jan 2 15:04"))

	body := wordwrap.String(c.Content, max(width-2, 10))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		Render(header + "\n" + body)
}

// renderMetadataColumn renders the right side of the detail view
func renderMetadataColumn(task *models.Task, board *models.Board, now time.Time, width int) string {
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	var parts []string
	section := func(header string, values ...string) {
		if len(parts) > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, sectionHeader(header))
		parts = append(parts, values...)
	}

	section("Status", valueStyle.Render(task.Status))
	section("Priority", lipgloss.NewStyle().
		Foreground(lipgloss.Color(task.Priority.Color())).
		Render("● "+task.Priority.Label()))

	due := SubtleStyle.Italic(true).Render("none")
	if task.DueDate != nil {
		due = valueStyle.Render(task.DueDate.Format(models.DueDateLayout))
		if task.IsOverdue(now) {
			due = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Overdue)).
				Bold(true).
				Render(task.DueDate.Format(models.DueDateLayout) + " (overdue)")
		}
	}
	section("Due", due)
	section("Created", valueStyle.Render(task.CreatedAt.Format("2006-01-02 15:04")))

	var assignees []string
	for _, id := range task.Assignees {
		if u := board.User(id); u != nil {
			assignees = append(assignees, valueStyle.Render(u.Name))
		}
	}
	if len(assignees) == 0 {
		assignees = []string{SubtleStyle.Italic(true).Render("unassigned")}
	}
	section("Assignees", assignees...)

	var tags []string
	for _, id := range task.Tags {
		if tag := board.Tag(id); tag != nil {
			tags = append(tags, RenderTagChip(tag))
		}
	}
	if len(tags) == 0 {
		tags = []string{SubtleStyle.Italic(true).Render("none")}
	}
	section("Tags", tags...)

	if len(task.Attachments) > 0 {
		section(fmt.Sprintf("Attachments (%d)", len(task.Attachments)), task.Attachments...)
	}

	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		PaddingLeft(1).
		Render(strings.Join(parts, "\n"))
}

func sectionHeader(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Bold(true).
		Render(text)
}
