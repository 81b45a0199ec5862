package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func testBoard() *models.Board {
	task := func(id, title, status string) *models.Task {
		return &models.Task{
			ID: id, Title: title, Status: status, Priority: models.PriorityMedium, CreatedAt: fixedNow.AddDate(0, -1, 0),
			Assignees: []string{}, Tags: []string{}, Comments: []models.Comment{}, Attachments: []string{},
		}
	}
	return &models.Board{
		ID:    "b1",
		Title: "Product Launch",
		Columns: []*models.Column{
			{ID: "todo", Title: "To Do", Tasks: []*models.Task{task("a", "Write docs", "To Do"), task("b", "Fix login", "To Do")}},
			{ID: "doing", Title: "In Progress", Tasks: []*models.Task{task("c", "Ship beta", "In Progress")}},
			{ID: "done", Title: "Done", Tasks: []*models.Task{}},
		},
		Users: []*models.User{},
		Tags:  []*models.Tag{},
	}
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	seq := 0
	a := app.New(testBoard(),
		app.WithClock(func() time.Time { return fixedNow }),
		app.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("new-%d", seq)
		}),
	)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func execute(t *testing.T, a *app.App, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := BoardCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(cli.WithApp(context.Background(), a))
	return out.String(), err
}

func writeIntents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func taskIDs(col *models.Column) []string {
	ids := []string{}
	for _, t := range col.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// ============================================================================
// SHOW
// ============================================================================

func TestShow_Human(t *testing.T) {
	out, err := execute(t, newTestApp(t), "", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "Product Launch (3 tasks)")
	assert.Contains(t, out, "To Do [todo] (2)")
	assert.Contains(t, out, "[a] Write docs (Medium)")
	assert.Contains(t, out, "Done [done] (0)")
	assert.Contains(t, out, "No tasks")
}

func TestShow_Quiet(t *testing.T) {
	out, err := execute(t, newTestApp(t), "", "show", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", out)
}

func TestShow_JSON(t *testing.T) {
	out, err := execute(t, newTestApp(t), "", "show", "--json")
	require.NoError(t, err)

	var result struct {
		Success bool         `json:"success"`
		Data    models.Board `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Len(t, result.Data.Columns, 3)
}

// ============================================================================
// APPLY
// ============================================================================

func TestApply_RunsIntentsInOrder(t *testing.T) {
	a := newTestApp(t)
	path := writeIntents(t, `
- action: move
  task: a
  column: In Progress
- action: complete
  task: c
- action: add
  column: todo
  title: "  Plan retro  "
  priority: high
  due_date: "2024-03-10"
- action: edit
  task: b
  title: Fix login flow
- action: delete
  task: a
`)

	out, err := execute(t, a, "", "apply", "--file", path)
	require.NoError(t, err)

	snap := a.BoardService.Snapshot()
	assert.Equal(t, []string{"b", "new-1"}, taskIDs(snap.Columns[0]))
	assert.Empty(t, taskIDs(snap.Columns[1]))
	assert.Equal(t, []string{"c"}, taskIDs(snap.Columns[2]))

	added, ok := a.BoardService.Task("new-1")
	require.True(t, ok)
	assert.Equal(t, "Plan retro", added.Title)
	assert.Equal(t, models.PriorityHigh, added.Priority)
	assert.Equal(t, fixedNow, added.CreatedAt)

	edited, _ := a.BoardService.Task("b")
	assert.Equal(t, "Fix login flow", edited.Title)
	assert.Equal(t, models.PriorityMedium, edited.Priority, "fields left out of an edit keep their value")

	assert.Contains(t, out, `Moved "Write docs" to In Progress`)
	assert.Contains(t, out, "Task completed!")
	assert.Contains(t, out, "Task added!")
	assert.Contains(t, out, "Task saved!")
	assert.Contains(t, out, "Task deleted")
}

func TestApply_ContinuesPastFailures(t *testing.T) {
	a := newTestApp(t)
	path := writeIntents(t, `
- action: add
  column: todo
  title: "   "
- action: move
  task: a
  column: nowhere
- action: fly
  task: a
- action: complete
  task: a
`)

	out, err := execute(t, a, "", "apply", "--file", path, "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	var result struct {
		Data struct {
			Results       []Result `json:"results"`
			Notifications []string `json:"notifications"`
			Failed        int      `json:"failed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Data.Failed)
	require.Len(t, result.Data.Results, 4)
	assert.Equal(t, OutcomeFailed, result.Data.Results[0].Outcome)
	assert.Equal(t, OutcomeFailed, result.Data.Results[1].Outcome)
	assert.Equal(t, OutcomeFailed, result.Data.Results[2].Outcome)
	assert.Equal(t, OutcomeApplied, result.Data.Results[3].Outcome)
	assert.Equal(t, []string{"Task completed!"}, result.Data.Notifications)

	snap := a.BoardService.Snapshot()
	assert.Equal(t, []string{"a"}, taskIDs(snap.Columns[2]))
}

func TestApply_MissingTaskIsSkipped(t *testing.T) {
	a := newTestApp(t)
	out, err := execute(t, a, "- action: delete\n  task: ghost\n- action: edit\n  task: ghost\n  title: x\n", "apply", "--file", "-", "--json")
	require.NoError(t, err)

	var result struct {
		Data struct {
			Results       []Result `json:"results"`
			Notifications []string `json:"notifications"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Data.Results, 2)
	assert.Equal(t, OutcomeSkipped, result.Data.Results[0].Outcome)
	assert.Equal(t, OutcomeSkipped, result.Data.Results[1].Outcome)
	assert.Empty(t, result.Data.Notifications)
	assert.Equal(t, 3, a.BoardService.Snapshot().TaskCount())
}

func TestApply_Quiet(t *testing.T) {
	a := newTestApp(t)
	out, err := execute(t, a, "- action: add\n  column: done\n  title: Celebrate\n", "apply", "-f", "-", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "new-1\n", out)
}

func TestApply_BadYAML(t *testing.T) {
	_, err := execute(t, newTestApp(t), "action: [", "apply", "--file", "-")
	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
}

func TestApply_MissingFile(t *testing.T) {
	_, err := execute(t, newTestApp(t), "", "apply", "--file", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}

func TestDecodeIntents(t *testing.T) {
	intents, err := DecodeIntents(strings.NewReader("- action: MOVE\n  task: a\n  column: done\n"))
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, ActionMove, intents[0].Action)
	assert.Nil(t, intents[0].Title)

	empty, err := DecodeIntents(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestApply_Validation(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		name   string
		intent Intent
	}{
		{name: "move without task", intent: Intent{Action: ActionMove, Column: "done"}},
		{name: "move without column", intent: Intent{Action: ActionMove, Task: "a"}},
		{name: "bad priority", intent: Intent{Action: ActionEdit, Task: "a", Priority: ptr("critical")}},
		{name: "bad due date", intent: Intent{Action: ActionAdd, Column: "todo", Title: ptr("x"), DueDate: ptr("tomorrow")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(a.BoardService, tt.intent)
			assert.Error(t, err)
		})
	}
	assert.Equal(t, 3, a.BoardService.Snapshot().TaskCount())
}

func ptr(s string) *string { return &s }
