package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/kanban/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already built application.
// Commands run under it use that application instead of loading one.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromContext returns the CLI for a command run.
// An application stored with WithApp is reused and left open on Close.
func FromContext(ctx context.Context, fixturePath string) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: a.Config(), ctx: ctx, borrowed: true}, nil
	}
	if ctx.Err() != nil {
		return nil, errors.Join(errors.New("command cancelled"), ctx.Err())
	}
	return NewCLI(ctx, fixturePath)
}
