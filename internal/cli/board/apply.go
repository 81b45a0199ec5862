package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ApplyCmd returns the board apply subcommand
func ApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a batch of task changes",
		Long: `Apply a YAML list of intents to the board, in order.

Each intent has an action (move, add, edit, delete, complete), a task id
and, where needed, a column id or title. add and edit also accept title,
description, priority, due_date, assignees and tags.

Failed intents are reported and the rest still run.`,
		Example: `  kanban board apply --file intents.yaml
  cat intents.yaml | kanban board apply --file - --json`,
		RunE: runApply,
	}

	cmd.Flags().StringP("file", "f", "", "Intents file, or - for stdin (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

// applyReport is the outcome of a whole apply run
type applyReport struct {
	Results       []Result       `json:"results"`
	Notifications []string       `json:"notifications"`
	Board         *models.Board  `json:"board"`
	Failed        int            `json:"failed"`
	Events        []events.Event `json:"-"`
}

func runApply(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	path, _ := cmd.Flags().GetString("file")

	intents, err := ReadIntents(path, cmd.InOrStdin())
	if err != nil {
		return cli.Fail(formatter, cli.DataErrorCode(err), "INVALID_INTENTS", err, "Intents are a YAML list of {action, task, column}")
	}

	cliInstance, err := cli.FromContext(cmd.Context(), cli.FixtureFlag(cmd))
	if err != nil {
		return cli.Fail(formatter, cli.ExitCodeFor(err), "INITIALIZATION_ERROR", err, "Check the --fixture path")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Every applied intent publishes at most one event
	eventChan, unsubscribe := cliInstance.App.Events().Subscribe(len(intents) + 1)
	defer unsubscribe()

	svc := cliInstance.App.BoardService
	report := applyReport{Results: make([]Result, 0, len(intents)), Notifications: []string{}}
	for i, in := range intents {
		res := Result{Index: i, Action: in.Action, TaskID: in.Task, Outcome: OutcomeApplied}
		task, err := Apply(svc, in)
		switch {
		case err != nil:
			res.Outcome = OutcomeFailed
			res.Error = err.Error()
			report.Failed++
			slog.Warn("intent failed", "index", i, "action", in.Action, "task_id", in.Task, "error", err)
		case task == nil:
			res.Outcome = OutcomeSkipped
		default:
			res.TaskID = task.ID
		}
		report.Results = append(report.Results, res)
	}

	report.Events = drain(eventChan)
	for _, e := range report.Events {
		report.Notifications = append(report.Notifications, e.Message)
	}
	report.Board = svc.Snapshot()

	if err := printReport(formatter, report); err != nil {
		return err
	}
	if report.Failed > 0 {
		return cli.WithExitCode(cli.ExitValidation, fmt.Errorf("%d of %d intents failed", report.Failed, len(intents)))
	}
	return nil
}

// drain collects the events already delivered to the channel
func drain(ch <-chan events.Event) []events.Event {
	var out []events.Event
	for {
		select {
		case e, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, e)
		default:
			return out
		}
	}
}

func printReport(f *cli.OutputFormatter, report applyReport) error {
	if f.Quiet {
		for _, r := range report.Results {
			if r.Outcome == OutcomeApplied {
				if _, err := fmt.Fprintln(f.Out, r.TaskID); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if f.JSON {
		return f.Success(report)
	}
	return f.Success(reportView{report})
}

// reportView prints the final board followed by notifications and failures
type reportView struct {
	report applyReport
}

func (v reportView) Lines() []string {
	lines := boardView{v.report.Board}.Lines()
	if len(v.report.Notifications) > 0 {
		lines = append(lines, "", "Notifications:")
		for _, n := range v.report.Notifications {
			lines = append(lines, "  "+n)
		}
	}
	if v.report.Failed > 0 {
		lines = append(lines, "", "Errors:")
		for _, r := range v.report.Results {
			if r.Outcome == OutcomeFailed {
				lines = append(lines, fmt.Sprintf("  #%d %s %s: %s", r.Index+1, r.Action, r.TaskID, r.Error))
			}
		}
	}
	return lines
}
