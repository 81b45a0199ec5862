package fixture

import (
	"github.com/spf13/cobra"
)

// FixtureCmd returns the fixture parent command
func FixtureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Work with board fixture files",
		Long:  "Export the loaded board as a YAML fixture or check a fixture file.",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ValidateCmd())

	return cmd
}
