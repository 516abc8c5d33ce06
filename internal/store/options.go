package store

import (
	"log/slog"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/codec"
	"github.com/thenoetrevino/pinboard/internal/ids"
)

// Option configures a Store
type Option func(*Store)

// WithClock sets the time source used for createdAt/updatedAt stamps
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithIDs sets the id generator
func WithIDs(g ids.Generator) Option {
	return func(s *Store) {
		s.ids = g
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithKey overrides the storage key the snapshot is saved under
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithCodec sets the snapshot encoding
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// WithSeed makes Open fill an empty slot with the sample boards
func WithSeed(enabled bool) Option {
	return func(s *Store) {
		s.seed = enabled
	}
}

// WithSaveErrorHandler registers a callback for failed snapshot writes.
// It runs after the store lock is released.
func WithSaveErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onSaveError = fn
	}
}
