package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "j")
	assert.Equal(t, "b", m.getCurrentTask().ID)

	m = press(t, m, "j")
	assert.Equal(t, "Already at the last task", lastNotification(t, m).Message)

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedTask(), "task selection resets on column change")

	m = press(t, m, "right", "right")
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, "Already at the last column", lastNotification(t, m).Message)
	assert.Nil(t, m.getCurrentTask(), "Done column is empty")

	m = press(t, m, "h", "left", "left")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	assert.Equal(t, "Already at the first column", lastNotification(t, m).Message)

	m = press(t, m, "k")
	assert.Equal(t, "Already at the first task", lastNotification(t, m).Message)
}

func TestNormalMode_ClearsNotifications(t *testing.T) {
	m := newTestModel(t, testBoard())
	m = press(t, m, "h")
	require.True(t, m.NotificationState.HasAny())

	m = press(t, m, "j")
	assert.False(t, m.NotificationState.HasAny())
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel(t, testBoard())
	require.True(t, m.UiState.SidebarVisible())

	m = press(t, m, "b")
	assert.False(t, m.UiState.SidebarVisible())
	assert.NotContains(t, m.View().Content, "Team")
}

// ============================================================================
// MOVING TASKS
// ============================================================================

func TestMoveTaskRight_SelectionFollows(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "L")
	assert.Equal(t, []string{"b"}, columnTaskIDs(m.Snapshot.Columns[0]))
	assert.Equal(t, []string{"c", "a"}, columnTaskIDs(m.Snapshot.Columns[1]))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, "a", m.getCurrentTask().ID)
	assert.Equal(t, "In Progress", m.getCurrentTask().Status)

	m = drainEvents(t, m)
	assert.Equal(t, `Moved "Write docs" to In Progress`, lastNotification(t, m).Message)
}

func TestMoveTask_AtEdges(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "H")
	assert.Equal(t, "Already at the first column", lastNotification(t, m).Message)
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]))

	m = press(t, m, "l", "l", "H")
	assert.Equal(t, "No task selected", lastNotification(t, m).Message)
}

func TestCompleteTask(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "j", "c")
	assert.Equal(t, []string{"b"}, columnTaskIDs(m.Snapshot.Columns[2]))
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, "Done", m.getCurrentTask().Status)

	m = drainEvents(t, m)
	assert.Equal(t, "Task completed!", lastNotification(t, m).Message)

	// Completing again is a no-op
	m = press(t, m, "c")
	m = drainEvents(t, m)
	assert.False(t, m.NotificationState.HasAny())
	assert.Equal(t, []string{"b"}, columnTaskIDs(m.Snapshot.Columns[2]))
}

func TestCompleteTask_NoDoneColumn(t *testing.T) {
	b := testBoard()
	b.Columns = b.Columns[:2]
	m := newTestModel(t, b)

	m = press(t, m, "c")
	assert.Equal(t, "No Done column", lastNotification(t, m).Message)
	assert.Equal(t, state.LevelWarning, lastNotification(t, m).Level)
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]))
}

func TestGrabAndDrop(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "m")
	require.Equal(t, state.GrabMode, m.UiState.Mode())
	assert.Contains(t, m.statusHint(), "drop into To Do")

	m = press(t, m, "l", "l", "l")
	assert.Equal(t, 2, m.UiState.Grab().TargetColumn, "target stays within the board")
	assert.Contains(t, m.View().Content, "↓ Write docs")
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]), "board untouched until drop")

	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Nil(t, m.UiState.Grab())
	assert.Equal(t, []string{"a"}, columnTaskIDs(m.Snapshot.Columns[2]))
	assert.Equal(t, "a", m.getCurrentTask().ID)
}

func TestGrab_Cancel(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "m", "l", "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]))
}

func TestGrab_DropOnSourceIsNoop(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "m", "l", "h", "space")
	m = drainEvents(t, m)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]))
	assert.False(t, m.NotificationState.HasAny())
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteTask(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "d")
	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())

	m = press(t, m, "n")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.Snapshot.Columns[0].Tasks, 2)

	m = press(t, m, "j", "d", "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"a"}, columnTaskIDs(m.Snapshot.Columns[0]))
	assert.Equal(t, 0, m.UiState.SelectedTask(), "selection is clamped after the last task goes")

	m = drainEvents(t, m)
	assert.Equal(t, "Task deleted", lastNotification(t, m).Message)
}

func TestDeleteTask_EmptyColumn(t *testing.T) {
	m := newTestModel(t, testBoard())
	m = press(t, m, "l", "l", "d")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "No task selected", lastNotification(t, m).Message)
}

// ============================================================================
// TASK FORM
// ============================================================================

func TestAddTask(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "l", "a")
	require.Equal(t, state.TaskFormMode, m.UiState.Mode())
	ed := m.FormState.Editor
	require.NotNil(t, ed)
	assert.Equal(t, editor.ModeCreate, ed.Mode())
	assert.Equal(t, "doing", ed.ColumnID())

	ed.Title = "  Plan retro  "
	ed.Tags = []string{"t1"}
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsOpen())
	assert.Equal(t, []string{"c", "new-1"}, columnTaskIDs(m.Snapshot.Columns[1]))
	task := m.getCurrentTask()
	require.NotNil(t, task)
	assert.Equal(t, "Plan retro", task.Title)
	assert.Equal(t, "In Progress", task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, []string{"t1"}, task.Tags)
	assert.Equal(t, fixedNow, task.CreatedAt)

	m = drainEvents(t, m)
	assert.Equal(t, "Task added!", lastNotification(t, m).Message)
}

func TestAddTask_EmptyTitleKeepsFormOpen(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "a")
	ed := m.FormState.Editor
	ed.Description = "details"
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.TaskFormMode, m.UiState.Mode())
	assert.Same(t, ed, m.FormState.Editor, "the same draft stays open")
	assert.Equal(t, "details", m.FormState.Editor.Description)
	n := lastNotification(t, m)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "Title is required", n.Message)
	assert.Len(t, m.Snapshot.Columns[0].Tasks, 2)
}

func TestAddTask_InvalidDueDate(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "a")
	m.FormState.Editor.Title = "Ship"
	m.FormState.Editor.DueDate = "next week"
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.TaskFormMode, m.UiState.Mode())
	assert.Equal(t, "Due date must be YYYY-MM-DD", lastNotification(t, m).Message)
}

func TestEditTask_KeepsPosition(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "e")
	ed := m.FormState.Editor
	require.NotNil(t, ed)
	assert.Equal(t, editor.ModeEdit, ed.Mode())
	assert.Equal(t, "Write docs", ed.Title)

	ed.Title = "Write better docs"
	ed.Priority = "urgent"
	ed.DueDate = "2024-03-15"
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"a", "b"}, columnTaskIDs(m.Snapshot.Columns[0]))
	task := m.Snapshot.Columns[0].Tasks[0]
	assert.Equal(t, "Write better docs", task.Title)
	assert.Equal(t, models.PriorityUrgent, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-03-15", task.DueDate.Format(models.DueDateLayout))

	m = drainEvents(t, m)
	assert.Equal(t, "Task saved!", lastNotification(t, m).Message)
}

func TestEditTask_DeletedWhileEditing(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "e")
	require.NoError(t, m.Board.DeleteTask("a"))
	m.FormState.Editor.Title = "Too late"
	m = press(t, m, "ctrl+s")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "Task no longer exists", lastNotification(t, m).Message)
}

func TestTaskForm_EscWithoutChanges(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "e", "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsOpen())
}

func TestTaskForm_DiscardFlow(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "a")
	ed := m.FormState.Editor
	ed.Title = "Half typed"

	m = press(t, m, "esc")
	require.Equal(t, state.DiscardConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Discard task?")

	m = press(t, m, "n")
	assert.Equal(t, state.TaskFormMode, m.UiState.Mode())
	assert.Equal(t, "Half typed", m.FormState.Editor.Title)

	m = press(t, m, "esc", "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.False(t, m.FormState.IsOpen())
	assert.Nil(t, m.UiState.DiscardContext())
	assert.Len(t, m.Snapshot.Columns[0].Tasks, 2)
	assert.True(t, ed.Closed(), "discarded editor is cancelled")
	_, err := ed.Submit()
	assert.ErrorIs(t, err, editor.ErrClosed)
}

func TestDiscardConfirm_MissingContext(t *testing.T) {
	m := newTestModel(t, testBoard())
	m.UiState.SetMode(state.DiscardConfirmMode)

	m = press(t, m, "y")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestSubmitErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{editor.ErrTitleRequired, "Title is required"},
		{board.ErrEmptyTitle, "Title is required"},
		{board.ErrTitleTooLong, "Title is too long"},
		{fmt.Errorf("%w: %q", editor.ErrInvalidDueDate, "x"), "Due date must be YYYY-MM-DD"},
		{fmt.Errorf("%w 'x'", models.ErrUnknownPriority), "Unknown priority"},
		{errors.New("boom"), "Failed to save task"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, submitErrorMessage(tt.err), "error %v", tt.err)
	}
}

// ============================================================================
// HELP AND DETAIL
// ============================================================================

func TestHelpMode(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	m = press(t, m, "x")
	assert.Equal(t, state.HelpMode, m.UiState.Mode(), "unrelated keys keep help open")

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestDetailMode(t *testing.T) {
	m := newTestModel(t, testBoard())

	m = press(t, m, "enter")
	assert.Equal(t, state.DetailMode, m.UiState.Mode())
	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = press(t, m, "space", "e")
	assert.Equal(t, state.TaskFormMode, m.UiState.Mode())
	assert.Equal(t, editor.ModeEdit, m.FormState.Editor.Mode())
}
