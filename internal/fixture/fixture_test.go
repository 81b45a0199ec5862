package fixture

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/models"
)

func TestDefault_IsValid(t *testing.T) {
	b := Default()
	require.NoError(t, b.Validate())

	assert.Equal(t, "Product Launch Q3", b.Title)
	assert.Len(t, b.Columns, 4)
	assert.Len(t, b.Users, 4)
	assert.Len(t, b.Tags, 5)
	assert.Equal(t, 8, b.TaskCount())
	assert.NotNil(t, b.ColumnByTitle(models.DefaultDoneColumnTitle))
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Columns[0].Tasks = nil
	a.Users[0].Name = "changed"

	b := Default()
	assert.Len(t, b.Columns[0].Tasks, 3)
	assert.Equal(t, "Alex Morgan", b.Users[0].Name)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	b, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "board-1", b.ID)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	b, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}

func TestLoadFile_FillsMissingFields(t *testing.T) {
	content := `id: b
title: Small
columns:
  - id: c1
    title: Todo
    tasks:
      - id: t1
        title: Write docs
  - id: c2
    title: Done
`
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)

	task, col := b.FindTask("t1")
	require.NotNil(t, task)
	assert.Equal(t, "c1", col.ID)
	assert.Equal(t, "Todo", task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.NotNil(t, task.Assignees)
	assert.NotNil(t, task.Comments)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"not yaml", "columns: [", "failed to parse fixture"},
		{"no columns", "id: b\ntitle: Empty\n", ErrEmptyBoard.Error()},
		{"duplicate task", `columns:
  - id: c1
    title: A
    tasks: [{id: t1, title: x}]
  - id: c2
    title: B
    tasks: [{id: t1, title: y}]
`, "duplicate task id"},
		{"wrong status", `columns:
  - id: c1
    title: A
    tasks: [{id: t1, title: x, status: B}]
`, "does not match"},
		{"null task", "id: b\ncolumns:\n  - id: c1\n    title: Backlog\n    tasks:\n      - ~\n", models.ErrNullEntry.Error()},
		{"null column", "id: b\ncolumns:\n  - ~\n", models.ErrNullEntry.Error()},
		{"null user", "id: b\ncolumns:\n  - id: c1\n    title: Backlog\nusers:\n  - ~\n", models.ErrNullEntry.Error()},
		{"null tag", "id: b\ncolumns:\n  - id: c1\n    title: Backlog\ntags: [~]\n", models.ErrNullEntry.Error()},
		{"blank title", `columns:
  - id: c1
    title: A
    tasks: [{id: t1, title: "  "}]
`, models.ErrEmptyTaskTitle.Error()},
		{"missing task id", `columns:
  - id: c1
    title: A
    tasks: [{title: x}]
`, models.ErrEmptyTaskID.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
