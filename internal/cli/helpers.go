package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/models"
)

// FixtureFlag returns the --fixture value inherited from the root command
func FixtureFlag(cmd *cobra.Command) string {
	if f := cmd.Flag("fixture"); f != nil {
		return f.Value.String()
	}
	return ""
}

// Formatter builds the output formatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// Fail reports err through the formatter and returns it tagged with code
func Fail(f *OutputFormatter, code int, errCode string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return WithExitCode(code, err)
}

// ResolveColumn finds a column by id, falling back to a case-insensitive title match
func ResolveColumn(b *models.Board, ref string) (*models.Column, error) {
	if col := b.Column(ref); col != nil {
		return col, nil
	}
	for _, col := range b.Columns {
		if strings.EqualFold(col.Title, ref) {
			return col, nil
		}
	}
	return nil, fmt.Errorf("column %q not found", ref)
}

// DescribeTask formats a task as a single summary line
func DescribeTask(t *models.Task) string {
	line := fmt.Sprintf("[%s] %s (%s)", t.ID, t.Title, t.Priority.Label())
	if t.DueDate != nil {
		line += " due " + t.DueDate.Format(models.DueDateLayout)
	}
	return line
}
