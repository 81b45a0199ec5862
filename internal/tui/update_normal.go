package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// handleNormalMode maps board key bindings to board operations and navigation
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Quit, "ctrl+c":
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.ToggleSidebar:
		m.UiState.ToggleSidebar()
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
		return m, nil

	case km.PrevColumn, "left":
		return m.stepColumn(-1)
	case km.NextColumn, "right":
		return m.stepColumn(1)
	case km.PrevTask, "up":
		return m.stepTask(-1)
	case km.NextTask, "down":
		return m.stepTask(1)

	case km.AddTask:
		return m.handleAddTask()
	}

	// Everything below acts on the selected task
	task := m.getCurrentTask()
	switch msg.String() {
	case km.EditTask, km.ViewTask, "enter", km.DeleteTask, km.CompleteTask,
		km.MoveTaskLeft, km.MoveTaskRight, km.GrabTask:
		if task == nil {
			m.NotificationState.Add(state.LevelInfo, "No task selected")
			return m, nil
		}
	default:
		return m, nil
	}

	switch msg.String() {
	case km.EditTask:
		return m.openEditor(task)
	case km.ViewTask, "enter":
		m.UiState.SetMode(state.DetailMode)
	case km.DeleteTask:
		m.UiState.SetMode(state.DeleteConfirmMode)
	case km.CompleteTask:
		return m.handleCompleteTask(task)
	case km.MoveTaskLeft:
		return m.handleMoveTask(task, -1)
	case km.MoveTaskRight:
		return m.handleMoveTask(task, 1)
	case km.GrabTask:
		m.UiState.StartGrab(task.ID, m.UiState.SelectedColumn())
	}
	return m, nil
}

// stepColumn moves the column selection by delta, resetting the task selection
func (m Model) stepColumn(delta int) (tea.Model, tea.Cmd) {
	target := m.UiState.SelectedColumn() + delta
	if !m.columnInRange(target, delta) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(target)
	m.UiState.SetSelectedTask(0)
	m.UiState.EnsureSelectionVisible(target)
	return m, nil
}

// stepTask moves the task selection within the current column by delta
func (m Model) stepTask(delta int) (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	target := m.UiState.SelectedTask() + delta
	if col == nil || target < 0 || target >= len(col.Tasks) {
		if delta < 0 {
			m.NotificationState.Add(state.LevelInfo, "Already at the first task")
		} else {
			m.NotificationState.Add(state.LevelInfo, "Already at the last task")
		}
		return m, nil
	}
	m.UiState.SetSelectedTask(target)
	m.UiState.EnsureTaskVisible(col.ID, target, m.visibleTaskCount())
	return m, nil
}

// columnInRange reports whether target is a column index, telling the user when it is not
func (m *Model) columnInRange(target, delta int) bool {
	if target >= 0 && target < len(m.Snapshot.Columns) {
		return true
	}
	if delta < 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return false
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		m.NotificationState.Add(state.LevelWarning, "The board has no columns")
		return m, nil
	}
	ed := editor.NewCreate(col.ID)
	ed.SetClock(m.now)
	m.openTaskForm(ed)
	return m, m.FormState.TaskForm.Init()
}

// openEditor opens the task form on a copy of the task
func (m Model) openEditor(task *models.Task) (tea.Model, tea.Cmd) {
	ed := editor.NewEdit(task)
	ed.SetClock(m.now)
	m.openTaskForm(ed)
	return m, m.FormState.TaskForm.Init()
}

func (m Model) handleCompleteTask(task *models.Task) (tea.Model, tea.Cmd) {
	if m.Board.DoneColumnID() == "" {
		m.NotificationState.Add(state.LevelWarning, "No Done column")
		return m, nil
	}

	completed, err := m.Board.CompleteTask(task.ID)
	if err != nil {
		slog.Error("Error completing task", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to complete task")
		return m, nil
	}
	m.refresh()
	if completed != nil {
		m.selectTask(completed.ID)
	}
	return m, nil
}

// handleMoveTask moves the task one column in the given direction.
// The selection follows the moved task and the viewport scrolls if needed.
func (m Model) handleMoveTask(task *models.Task, delta int) (tea.Model, tea.Cmd) {
	target := m.UiState.SelectedColumn() + delta
	if !m.columnInRange(target, delta) {
		return m, nil
	}
	return m.moveTo(task.ID, target)
}

// moveTo moves the task into the column at index target and selects it there
func (m Model) moveTo(taskID string, target int) (tea.Model, tea.Cmd) {
	moved, err := m.Board.MoveTask(taskID, m.Snapshot.Columns[target].ID)
	if err != nil {
		slog.Error("Error moving task", "task_id", taskID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to move task")
		return m, nil
	}
	m.refresh()
	if moved != nil {
		m.selectTask(moved.ID)
	}
	return m, nil
}
