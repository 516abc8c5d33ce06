package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/app"
	"github.com/thenoetrevino/pinboard/internal/config"
	"github.com/thenoetrevino/pinboard/internal/logging"
	"github.com/thenoetrevino/pinboard/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logFile, err := logging.Init(cfg.Logging.Path, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.Open(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open boards: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	p := tea.NewProgram(tui.New(application), tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Every mutation is saved before the store call returns, so there is
	// nothing to drain on shutdown.
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		<-errChan
	}

	return nil
}
