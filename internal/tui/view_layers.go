package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// renderTaskFormLayer renders the task editor modal as a layer.
// Create and edit use different border colors.
func (m Model) renderTaskFormLayer() *lipgloss.Layer {
	form, ed := m.FormState.TaskForm, m.FormState.Editor
	if form == nil || ed == nil {
		return nil
	}

	width, height := layers.PopupDimensions(m.UiState.Width(), m.UiState.Height())

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	boxStyle := components.CreateFormBoxStyle
	formTitle := "New Task"
	if col := m.Snapshot.Column(ed.ColumnID()); col != nil {
		formTitle = "New Task in " + col.Title
	}
	if ed.Mode() == editor.ModeEdit {
		boxStyle = components.EditFormBoxStyle
		formTitle = "Edit Task"
	}

	helpText := components.SubtleStyle.Render(fmt.Sprintf("%s: save  Esc: close  Tab: next field", m.Config.KeyMappings.SaveForm))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(formTitle),
		"",
		form.View(),
		"",
		helpText,
	)

	formBox := boxStyle.
		Width(width).
		MaxHeight(height).
		Render(content)

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// renderDetailLayer renders the read-only task view as a layer
func (m Model) renderDetailLayer() *lipgloss.Layer {
	task := m.getCurrentTask()
	if task == nil {
		return nil
	}
	width, height := layers.PopupDimensions(m.UiState.Width(), m.UiState.Height())
	view := components.RenderTaskView(components.TaskViewProps{
		Task:        task,
		Board:       m.Snapshot,
		PopupWidth:  width,
		PopupHeight: height,
		Now:         m.now(),
	})
	return layers.CreateCenteredLayer(view, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer asks before deleting the selected task
func (m Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	task := m.getCurrentTask()
	if task == nil {
		return nil
	}
	confirmBox := components.DeleteConfirmBoxStyle.
		Width(layers.ConfirmWidth).
		Render(fmt.Sprintf("Delete '%s'?\n\n[y]es  [n]o", task.Title))
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderDiscardConfirmLayer asks before throwing away editor changes
func (m Model) renderDiscardConfirmLayer() *lipgloss.Layer {
	ctx := m.UiState.DiscardContext()
	if ctx == nil {
		return nil
	}
	confirmBox := components.DiscardConfirmBoxStyle.
		Width(layers.ConfirmWidth).
		Render(ctx.Message + "\n\n[y]es  [n]o")
	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(54).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`KANBAN - Keyboard Shortcuts

TASKS
  %-8s Add new task to the current column
  %-8s Edit selected task
  %-8s View task details
  %-8s Delete selected task
  %-8s Complete task (move to %s)
  %-8s Move task to previous column
  %-8s Move task to next column
  %-8s Pick up task, then drop with enter

NAVIGATION
  %-8s Move to previous column
  %-8s Move to next column
  %-8s Move to previous task
  %-8s Move to next task

FORMS
  %-8s Save the task
  esc      Close (asks when there are changes)

OTHER
  %-8s Toggle team sidebar
  %-8s Show this help
  %-8s Quit

Press esc to close`,
		km.AddTask,
		km.EditTask,
		km.ViewTask,
		km.DeleteTask,
		km.CompleteTask, m.Config.Board.DoneColumn,
		km.MoveTaskLeft,
		km.MoveTaskRight,
		km.GrabTask,
		km.PrevColumn,
		km.NextColumn,
		km.PrevTask,
		km.NextTask,
		km.SaveForm,
		km.ToggleSidebar,
		km.ShowHelp,
		km.Quit,
	)
}
