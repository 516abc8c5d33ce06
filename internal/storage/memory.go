package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is returned by a Memory slot whose saves were made to fail
var ErrInjected = errors.New("injected storage failure")

// Memory is an in-process Slot. Nothing survives the process.
type Memory struct {
	mu        sync.Mutex
	data      map[string][]byte
	saves     int
	failSaves bool
}

// NewMemory returns an empty memory slot
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load returns a copy of the stored value
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data
func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return ErrInjected
	}
	m.data[key] = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Remove deletes key
func (m *Memory) Remove(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}

// Saves returns how many successful writes the slot has seen
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailSaves makes every later Save return ErrInjected (or stop doing so)
func (m *Memory) FailSaves(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSaves = fail
}

// Has reports whether key holds a value
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}
