package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/pinboard/internal/app"
	"github.com/thenoetrevino/pinboard/internal/config"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// AppKey carries an already opened *app.App through a command context.
// Commands use it instead of opening storage themselves.
const AppKey ContextKey = "pinboardApp"

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	// owned is false when the App came from the context and the caller
	// is responsible for closing it
	owned bool
}

// WithApp returns a context that GetCLIFromContext resolves to a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, AppKey, a)
}

// NewCLI loads the configuration and opens the configured storage
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open board storage: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns the App injected with WithApp, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(AppKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Error("error closing app", "error", err)
		return err
	}
	return nil
}
