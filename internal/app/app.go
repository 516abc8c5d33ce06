package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/codec"
	"github.com/thenoetrevino/pinboard/internal/config"
	"github.com/thenoetrevino/pinboard/internal/dnd"
	"github.com/thenoetrevino/pinboard/internal/ids"
	"github.com/thenoetrevino/pinboard/internal/notify"
	"github.com/thenoetrevino/pinboard/internal/storage"
	"github.com/thenoetrevino/pinboard/internal/store"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// SaveFailedMessage is the toast shown when a snapshot write fails
const SaveFailedMessage = "Changes could not be saved"

// App holds the board store and its collaborators and provides
// dependency injection. This is the main application container that
// manages their lifecycles.
type App struct {
	Config   *config.Config
	Store    *store.Store
	Notifier *notify.Center
	Clock    clock.Clock

	slot    storage.Slot
	logger  *slog.Logger
	metrics *dnd.Metrics
}

// Open builds slot, store and notification center from cfg
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.clock == nil {
		ac.clock = clock.Real()
	}
	if ac.ids == nil {
		ac.ids = ids.UUID()
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}

	enc, err := codec.ByName(cfg.Storage.Codec)
	if err != nil {
		return nil, err
	}

	slot := ac.slot
	if slot == nil {
		slot, err = storage.Open(ctx, storage.Options{Backend: cfg.Storage.Backend, Path: cfg.Storage.Path})
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
	}

	center := notify.NewCenter(ac.clock, ac.ids, notify.Durations{
		Success: cfg.Notifications.Success,
		Info:    cfg.Notifications.Info,
		Warning: cfg.Notifications.Warning,
		Error:   cfg.Notifications.Error,
	})

	boards, err := store.Open(ctx, slot,
		store.WithClock(ac.clock),
		store.WithIDs(ac.ids),
		store.WithLogger(ac.logger.With("component", "store")),
		store.WithKey(cfg.Storage.Key),
		store.WithCodec(enc),
		store.WithSeed(cfg.Seed()),
		store.WithSaveErrorHandler(func(error) {
			center.Error(SaveFailedMessage)
		}),
	)
	if err != nil {
		if closeErr := slot.Close(); closeErr != nil {
			ac.logger.Error("error closing storage", "error", closeErr)
		}
		return nil, err
	}

	ac.logger.Debug("app opened", "backend", cfg.Storage.Backend, "codec", enc.Name())
	return &App{
		Config:   cfg,
		Store:    boards,
		Notifier: center,
		Clock:    ac.clock,
		slot:     slot,
		logger:   ac.logger,
		metrics:  dnd.NewMetrics(ac.clock.Now()),
	}, nil
}

// Coordinator returns a drag coordinator bound to one board
func (a *App) Coordinator(boardID types.BoardID) *dnd.Coordinator {
	return dnd.NewCoordinator(boardID, a.Store, a.Notifier, a.logger.With("component", "dnd")).
		WithMetrics(a.metrics)
}

// DropMetrics returns the outcome counters shared by all coordinators
func (a *App) DropMetrics() dnd.MetricsSnapshot {
	return a.metrics.Snapshot(a.Clock.Now())
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the storage slot
func (a *App) Close() error {
	if a.metrics.Total() > 0 {
		snap := a.DropMetrics()
		a.logger.Info("drop summary",
			"moved", snap.Moved,
			"unchanged", snap.Unchanged,
			"cancelled", snap.Cancelled,
			"missed", snap.Missed,
			"failed", snap.Failed,
			"uptime", snap.Uptime)
	}
	a.Notifier.Clear()
	return a.slot.Close()
}
