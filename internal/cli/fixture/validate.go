package fixture

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	boardfixture "github.com/thenoetrevino/kanban/internal/fixture"
)

// ValidateCmd returns the fixture validate subcommand
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a fixture file",
		Long:  "Parse a YAML fixture and check that ids are unique and statuses match their columns.",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// validation is the summary of a fixture that passed its checks
type validation struct {
	Path    string `json:"path"`
	BoardID string `json:"board_id"`
	Columns int    `json:"columns"`
	Tasks   int    `json:"tasks"`
}

func (v validation) GetID() string {
	return v.BoardID
}

func (v validation) Lines() []string {
	return []string{"✓ " + v.Path + ": " + v.BoardID + " is valid"}
}

func runValidate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	b, err := boardfixture.LoadFile(args[0])
	if err != nil {
		return cli.Fail(formatter, cli.DataErrorCode(err), "INVALID_FIXTURE", err, "")
	}

	return formatter.Success(validation{
		Path:    args[0],
		BoardID: b.ID,
		Columns: len(b.Columns),
		Tasks:   b.TaskCount(),
	})
}
