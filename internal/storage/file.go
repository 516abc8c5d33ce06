package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Slot that keeps one file per key in a directory.
// Single file per key, human-readable when the JSON codec is used.
type File struct {
	dir string
}

// OpenFile uses dir (created if missing). An empty dir means ~/.pinboard/data.
func OpenFile(dir string) (*File, error) {
	if dir == "" {
		base, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, filepath.Base(key)+".snapshot")
}

// Load reads the file for key
func (f *File) Load(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Save writes to a temp file and renames it over the old one so a crash
// never leaves a half-written snapshot behind
func (f *File) Save(_ context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, ".pinboard-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename file: %w", err)
	}
	return nil
}

// Remove deletes the file for key
func (f *File) Remove(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend
func (f *File) Close() error {
	return nil
}
