package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context

	// borrowed apps belong to whoever put them in the context
	borrowed bool
}

// NewCLI loads the configuration and the board named by fixturePath.
// An empty fixturePath falls back to the config, then to the built-in board.
func NewCLI(ctx context.Context, fixturePath string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Load(cfg, fixturePath)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
