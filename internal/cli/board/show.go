package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		Long:  "Print every column of the board with its tasks.",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

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

	if formatter.Quiet {
		for _, col := range snapshot.Columns {
			for _, t := range col.Tasks {
				if _, err := fmt.Fprintln(formatter.Out, t.ID); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(snapshot)
	}
	return formatter.Success(boardView{snapshot})
}

// boardView prints a board column by column
type boardView struct {
	board *models.Board
}

func (v boardView) Lines() []string {
	b := v.board
	lines := []string{fmt.Sprintf("%s (%d tasks)", b.Title, b.TaskCount())}
	if b.Description != "" {
		lines = append(lines, b.Description)
	}
	for _, col := range b.Columns {
		lines = append(lines, "", fmt.Sprintf("%s [%s] (%d)", col.Title, col.ID, len(col.Tasks)))
		if len(col.Tasks) == 0 {
			lines = append(lines, "  No tasks")
			continue
		}
		for _, t := range col.Tasks {
			lines = append(lines, "  "+cli.DescribeTask(t))
		}
	}
	return lines
}
