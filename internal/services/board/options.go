package board

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kanban/internal/events"
)

// Option is a functional option for configuring the board service
type Option func(*service)

// WithPublisher sets where change notifications are sent
func WithPublisher(p events.Publisher) Option {
	return func(s *service) {
		s.publisher = p
	}
}

// WithClock sets the clock used for createdAt and event timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator sets the function producing new task ids
func WithIDGenerator(gen func() string) Option {
	return func(s *service) {
		s.newID = gen
	}
}

// WithDoneColumn sets the title of the column completed tasks go to
func WithDoneColumn(title string) Option {
	return func(s *service) {
		if title != "" {
			s.doneTitle = title
		}
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewTaskID returns a random task id such as "task-1b4e28ba-2fa1-11d2-883f-0016d3cca427"
func NewTaskID() string {
	return "task-" + uuid.NewString()
}
