package task

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task",
		Long:  "Show every field of a task, with user and tag names resolved.",
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	taskID, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.FromContext(cmd.Context(), cli.FixtureFlag(cmd))
	if err != nil {
		return cli.Fail(formatter, cli.ExitCodeFor(err), "INITIALIZATION_ERROR", err, "Check the --fixture path")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	snapshot := cliInstance.App.BoardService.Snapshot()
	task, col := snapshot.FindTask(taskID)
	if task == nil {
		return cli.Fail(formatter, cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("task %q not found", taskID), "Run: kanban task list")
	}

	if formatter.Quiet {
		return formatter.Success(newTaskView(task, col))
	}
	if formatter.JSON {
		return formatter.Success(task)
	}
	return formatter.Success(taskDetail{task: task, board: snapshot})
}

// taskDetail prints a task with names resolved against the board
type taskDetail struct {
	task  *models.Task
	board *models.Board
}

func (d taskDetail) Lines() []string {
	t := d.task
	due := "none"
	if t.DueDate != nil {
		due = t.DueDate.Format(models.DueDateLayout)
	}

	lines := []string{
		fmt.Sprintf("[%s] %s", t.ID, t.Title),
		"",
		"Status:      " + t.Status,
		"Priority:    " + t.Priority.Label(),
		"Due:         " + due,
		"Created:     " + t.CreatedAt.Format(models.DueDateLayout),
		"Assignees:   " + d.names(t.Assignees, func(id string) string {
			if u := d.board.User(id); u != nil {
				return u.Name
			}
			return ""
		}),
		"Tags:        " + d.names(t.Tags, func(id string) string {
			if tag := d.board.Tag(id); tag != nil {
				return tag.Name
			}
			return ""
		}),
	}
	if len(t.Attachments) > 0 {
		lines = append(lines, "Attachments: "+strings.Join(t.Attachments, ", "))
	}
	if t.Description != "" {
		lines = append(lines, "", t.Description)
	}
	if len(t.Comments) > 0 {
		lines = append(lines, "", fmt.Sprintf("Comments (%d)", len(t.Comments)))
		for _, c := range t.Comments {
			author := c.UserID
			if u := d.board.User(c.UserID); u != nil {
				author = u.Name
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", author, c.Content))
		}
	}
	return lines
}

// names resolves ids to names, keeping the raw id when the lookup fails
func (d taskDetail) names(ids []string, lookup func(string) string) string {
	if len(ids) == 0 {
		return "none"
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name := lookup(id); name != "" {
			out = append(out, name)
		} else {
			out = append(out, id)
		}
	}
	return strings.Join(out, ", ")
}
