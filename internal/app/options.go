package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// WithConfig sets the user configuration; defaults are used otherwise
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock handed to the board service
func WithClock(now func() time.Time) Option {
	return func(c *appConfig) {
		c.now = now
	}
}

// WithIDGenerator sets the task id generator handed to the board service
func WithIDGenerator(gen func() string) Option {
	return func(c *appConfig) {
		c.newID = gen
	}
}
