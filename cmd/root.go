package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/fixture"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/logging"
)

// NewRootCmd builds the kanban command tree.
// Run without a subcommand it opens the interactive board.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - A terminal-based kanban board",
		Long: `Kanban is a terminal-based kanban board.

Run it without arguments to open the board. The subcommands read and
change the same board from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			// Logs go to a file so they never draw over the TUI
			if err := logging.Init(cfg.Log.Path, cfg.Log.SlogLevel()); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fixturePath, _ := cmd.Flags().GetString("fixture")
			return launcher.Launch(cfg, fixturePath)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, err)
	})
	rootCmd.PersistentFlags().String("fixture", "", "YAML board to load (defaults to the config, then the built-in board)")

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(fixture.FixtureCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
