package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Inspect and change the board",
		Long:  "Show the loaded board or apply a batch of task changes to it.",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ApplyCmd())

	return cmd
}
