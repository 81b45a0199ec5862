package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List all tasks on the board, or only those in one column.",
		RunE:  runList,
	}

	// Flags
	cmd.Flags().String("column", "", "Column id or title to list")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	columnRef, _ := cmd.Flags().GetString("column")

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
	columns := snapshot.Columns
	if columnRef != "" {
		col, err := cli.ResolveColumn(snapshot, columnRef)
		if err != nil {
			return cli.Fail(formatter, cli.ExitNotFound, "COLUMN_NOT_FOUND", err, "Run: kanban board show")
		}
		columns = []*models.Column{col}
	}

	allTasks := []taskView{}
	for _, col := range columns {
		for _, t := range col.Tasks {
			allTasks = append(allTasks, newTaskView(t, col))
		}
	}

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs
		for _, t := range allTasks {
			if _, err := fmt.Fprintln(formatter.Out, t.ID); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(allTasks)
	}

	// Human-readable output
	if len(allTasks) == 0 {
		_, err := fmt.Fprintln(formatter.Out, "No tasks found")
		return err
	}

	if _, err := fmt.Fprintf(formatter.Out, "Found %d tasks:\n\n", len(allTasks)); err != nil {
		return err
	}
	for _, t := range allTasks {
		task, _ := snapshot.FindTask(t.ID)
		if _, err := fmt.Fprintf(formatter.Out, "  %s  %s\n", cli.DescribeTask(task), t.Status); err != nil {
			return err
		}
	}

	return nil
}

func newTaskView(t *models.Task, col *models.Column) taskView {
	v := taskView{
		ID:       t.ID,
		Title:    t.Title,
		Status:   t.Status,
		ColumnID: col.ID,
		Priority: string(t.Priority),
	}
	if t.DueDate != nil {
		v.DueDate = t.DueDate.Format(models.DueDateLayout)
	}
	return v
}
