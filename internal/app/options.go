package app

import (
	"log/slog"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/ids"
	"github.com/thenoetrevino/pinboard/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	slot   storage.Slot
	clock  clock.Clock
	ids    ids.Generator
	logger *slog.Logger
}

// WithSlot uses an already open storage slot instead of the configured one.
// The App takes ownership and closes it.
func WithSlot(slot storage.Slot) Option {
	return func(cfg *appConfig) {
		cfg.slot = slot
	}
}

// WithClock sets the clock shared by the store and the notifications
func WithClock(c clock.Clock) Option {
	return func(cfg *appConfig) {
		cfg.clock = c
	}
}

// WithIDs sets the id generator
func WithIDs(g ids.Generator) Option {
	return func(cfg *appConfig) {
		cfg.ids = g
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
