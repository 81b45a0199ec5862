package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/thenoetrevino/kanban/internal/editor"
	"github.com/thenoetrevino/kanban/internal/fixture"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "explicit code", err: WithExitCode(ExitUsage, errors.New("bad flag")), want: ExitUsage},
		{name: "wrapped explicit code", err: fmt.Errorf("run: %w", WithExitCode(ExitNotFound, errors.New("gone"))), want: ExitNotFound},
		{name: "missing file", err: fmt.Errorf("open: %w", os.ErrNotExist), want: ExitNotFound},
		{name: "empty fixture", err: fixture.ErrEmptyBoard, want: ExitDataErr},
		{name: "duplicate task", err: fmt.Errorf("invalid fixture: %w", models.ErrDuplicateTaskID), want: ExitDataErr},
		{name: "null fixture entry", err: fmt.Errorf("invalid fixture: %w: task 0 of column c1", models.ErrNullEntry), want: ExitDataErr},
		{name: "blank fixture title", err: fmt.Errorf("invalid fixture: %w: t1", models.ErrEmptyTaskTitle), want: ExitDataErr},
		{name: "empty title", err: board.ErrEmptyTitle, want: ExitValidation},
		{name: "editor title", err: editor.ErrTitleRequired, want: ExitValidation},
		{name: "bad due date", err: fmt.Errorf("%w: soon", editor.ErrInvalidDueDate), want: ExitValidation},
		{name: "other", err: errors.New("boom"), want: ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	if err := WithExitCode(ExitError, nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestDataErrorCode(t *testing.T) {
	if got := DataErrorCode(errors.New("yaml: line 1")); got != ExitDataErr {
		t.Errorf("Expected ExitDataErr, got %d", got)
	}
	if got := DataErrorCode(os.ErrNotExist); got != ExitNotFound {
		t.Errorf("Expected ExitNotFound, got %d", got)
	}
}
