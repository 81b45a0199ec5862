package fixture

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	boardfixture "github.com/thenoetrevino/kanban/internal/fixture"
)

// ExportCmd returns the fixture export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board as a YAML fixture",
		Long:  "Write the loaded board as YAML. The output can be passed back with --fixture.",
		Example: `  kanban fixture export > board.yaml
  kanban --fixture board.yaml`,
		RunE: runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	outPath, _ := cmd.Flags().GetString("out")

	cliInstance, err := cli.FromContext(cmd.Context(), cli.FixtureFlag(cmd))
	if err != nil {
		return cli.Fail(formatter, cli.ExitCodeFor(err), "INITIALIZATION_ERROR", err, "Check the --fixture path")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return cli.Fail(formatter, cli.ExitError, "WRITE_ERROR", err, "")
		}
		defer f.Close()
		w = f
	}

	if err := boardfixture.Encode(w, cliInstance.App.BoardService.Snapshot()); err != nil {
		return cli.Fail(formatter, cli.ExitError, "WRITE_ERROR", err, "")
	}

	if outPath != "" {
		slog.Info("fixture exported", "path", outPath)
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "Board written to %s\n", outPath)
		return err
	}
	return nil
}
