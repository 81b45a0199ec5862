package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// ColumnProps describes everything RenderColumn needs to draw one column
type ColumnProps struct {
	Board        *models.Board // resolves tag and user ids on the cards
	Column       *models.Column
	Selected     bool // column has the cursor
	SelectedTask int  // index of the selected task, ignored when not Selected
	Height       int  // total height including borders, 0 for auto
	ScrollOffset int  // index of the first visible task
	Now          time.Time

	// GrabbedTaskID is the task being moved, drawn dimmed in its source column
	GrabbedTaskID string
	// Ghost is the title of the grabbed task when this column is the drop target
	Ghost string
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	column := props.Column
	content := renderColumnHeader(column, len(column.Tasks))

	if props.Ghost != "" {
		content += GhostStyle.Render(" ↓ " + truncate(props.Ghost, taskTitleMaxLength)) + "\n"
	}

	if len(column.Tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No tasks")
	} else {
		maxVisibleTasks := VisibleTaskCount(props.Height)
		if props.Ghost != "" {
			maxVisibleTasks = max(maxVisibleTasks-1, 1)
		}
		scrollOffset := min(max(props.ScrollOffset, 0), len(column.Tasks)-1)

		content += renderScrollIndicator(scrollOffset > 0, "▲ more above")

		endIdx := min(scrollOffset+maxVisibleTasks, len(column.Tasks))
		for i, task := range column.Tasks[scrollOffset:endIdx] {
			actualIdx := scrollOffset + i
			content += RenderTask(TaskProps{
				Task:     task,
				Board:    props.Board,
				Selected: props.Selected && actualIdx == props.SelectedTask,
				Grabbed:  task.ID == props.GrabbedTaskID,
				Now:      props.Now,
			})
		}

		// Push the bottom indicator flush to the bottom padding area.
		// ColumnStyle adds top border, bottom padding and bottom border.
		used := strings.Count(content, "\n") + 1
		hasBottomIndicator := endIdx < len(column.Tasks)
		if props.Height > 0 {
			remaining := props.Height - 3 - used
			if hasBottomIndicator {
				remaining--
			}
			if remaining > 0 {
				content += strings.Repeat("\n", remaining)
			}
		}
		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	switch {
	case props.Ghost != "":
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}

func renderColumnHeader(column *models.Column, taskCount int) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, taskCount)) + "\n"
}

// renderScrollIndicator always reserves one line so columns stay aligned
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}
