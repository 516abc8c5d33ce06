// Package storage provides the durable key-value slot that board
// snapshots are written to.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// DefaultKey is the fixed storage name the board snapshot lives under
const DefaultKey = "board-storage"

// Storage errors
var (
	// ErrNotFound indicates the key holds no value
	ErrNotFound = errors.New("storage key not found")

	// ErrUnknownBackend indicates an unsupported backend name
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrEmptyKey indicates an empty key was passed
	ErrEmptyKey = errors.New("storage key cannot be empty")
)

// Slot is a durable key-value store. Writes replace the whole value.
type Slot interface {
	// Load returns the value stored under key, or ErrNotFound
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key
	Save(ctx context.Context, key string, data []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases the backend
	Close() error
}

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Options selects and locates a backend
type Options struct {
	Backend string
	// Path is the database file (sqlite) or directory (file).
	// Ignored by the memory backend.
	Path string
}

// Open creates the slot described by opts
func Open(ctx context.Context, opts Options) (Slot, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		return OpenSQLite(ctx, opts.Path)
	case BackendFile:
		return OpenFile(opts.Path)
	case BackendMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
