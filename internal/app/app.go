package app

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/fixture"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	cfg    *config.Config
	bus    *events.Bus
	logger *slog.Logger

	// BoardService is the only writer of board state
	BoardService board.Service
}

// New creates a new App serving a copy of b
func New(b *models.Board, opts ...Option) *App {
	c := &appConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	bus := events.NewBus()

	serviceOpts := []board.Option{
		board.WithPublisher(bus),
		board.WithDoneColumn(c.cfg.Board.DoneColumn),
		board.WithLogger(c.logger),
	}
	if c.now != nil {
		serviceOpts = append(serviceOpts, board.WithClock(c.now))
	}
	if c.newID != nil {
		serviceOpts = append(serviceOpts, board.WithIDGenerator(c.newID))
	}

	return &App{
		cfg:          c.cfg,
		bus:          bus,
		logger:       c.logger,
		BoardService: board.NewService(b, serviceOpts...),
	}
}

// Load creates an App over the board named by the config's fixture setting.
// The fixture path argument wins over the config when non-empty.
func Load(cfg *config.Config, fixturePath string, opts ...Option) (*App, error) {
	if fixturePath == "" {
		fixturePath = cfg.Board.Fixture
	}

	b, err := fixture.Load(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	a := New(b, append([]Option{WithConfig(cfg)}, opts...)...)
	a.logger.Info("board loaded", "board_id", b.ID, "tasks", b.TaskCount(), "fixture", fixturePath)
	return a, nil
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// Events returns the bus carrying board change notifications
func (a *App) Events() *events.Bus {
	return a.bus
}

// Close releases application resources. Event subscribers see their channels closed.
func (a *App) Close() error {
	return a.bus.Close()
}
