package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// TaskProps describes one task card
type TaskProps struct {
	Task     *models.Task
	Board    *models.Board
	Selected bool
	Grabbed  bool // task is being moved to another column
	Now      time.Time
}

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}                      ┃
//	┃ priority │ due date               ┃
//	┃ [tag1] [tag2] +N                  ┃
//	┃ AB CD                       💬 2  ┃
//	┗━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed width and length
func RenderTask(props TaskProps) string {
	bg := theme.TaskBg
	border := theme.Subtle
	if props.Selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}
	if props.Grabbed {
		border = theme.GrabbedBorder
	}

	task := props.Task
	lines := []string{
		renderTaskTitle(task, bg),
		renderTaskMetadata(task, props.Now, bg),
		renderTaskTags(task, props.Board, bg),
		renderTaskFooter(task, props.Board, bg),
	}

	style := TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if props.Grabbed {
		style = style.Faint(true)
	}

	return style.Render(strings.Join(lines, "\n"))
}

func renderTaskTitle(task *models.Task, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + truncate(task.Title, taskTitleMaxLength))
}

// renderTaskMetadata renders priority and due date on the same line, separated by │
func renderTaskMetadata(task *models.Task, now time.Time, bg string) string {
	priorityDisplay := lipgloss.NewStyle().
		Foreground(lipgloss.Color(task.Priority.Color())).
		Background(lipgloss.Color(bg)).
		Render("● " + task.Priority.Label())

	var dueDisplay string
	switch {
	case task.DueDate == nil:
		dueDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("no due date")
	case task.IsOverdue(now):
		dueDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Overdue)).
			Background(lipgloss.Color(bg)).
			Bold(true).
			Render("overdue " + task.DueDate.Format(models.DueDateLayout))
	default:
		dueDisplay = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)).
			Background(lipgloss.Color(bg)).
			Render("due " + task.DueDate.Format(models.DueDateLayout))
	}

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(" │ ")

	return " " + priorityDisplay + separator + dueDisplay
}

// renderTaskTags renders up to maxTagChips tags as chips and counts the rest.
// Tag ids the board does not know are skipped.
func renderTaskTags(task *models.Task, board *models.Board, bg string) string {
	var chips []string
	hidden := 0
	for _, id := range task.Tags {
		tag := board.Tag(id)
		if tag == nil {
			continue
		}
		if len(chips) == maxTagChips {
			hidden++
			continue
		}
		chips = append(chips, RenderTagChip(tag))
	}

	subtle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))
	if len(chips) == 0 {
		return " " + subtle.Italic(true).Render("no tags")
	}
	if hidden > 0 {
		chips = append(chips, subtle.Render(fmt.Sprintf("+%d", hidden)))
	}
	spacer := lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(" ")
	return " " + strings.Join(chips, spacer)
}

// renderTaskFooter renders assignee initials on the left and the comment count on the right
func renderTaskFooter(task *models.Task, board *models.Board, bg string) string {
	subtle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg))

	var initials []string
	for _, id := range task.Assignees {
		if u := board.User(id); u != nil {
			initials = append(initials, u.Initials())
		}
	}
	left := subtle.Italic(true).Render("unassigned")
	if len(initials) > 0 {
		left = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Highlight)).
			Background(lipgloss.Color(bg)).
			Render(strings.Join(initials, " "))
	}

	right := ""
	if n := len(task.Comments); n > 0 {
		right = subtle.Render(fmt.Sprintf("💬 %d", n))
	}

	gap := max(TaskCardWidth-3-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return " " + left + strings.Repeat(" ", gap) + right
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
