// Package store is the single source of truth for board data.
//
// Every mutation runs to completion under one lock and is followed by a
// full snapshot write to the storage slot. Operations that target an
// unknown board, column, ticket, checklist or item change nothing and
// report false; they never panic or return an error.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/pinboard/internal/clock"
	"github.com/thenoetrevino/pinboard/internal/codec"
	"github.com/thenoetrevino/pinboard/internal/ids"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/storage"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// Store owns the board tree and its persistence
type Store struct {
	mu      sync.Mutex
	boards  []models.Board
	current *types.BoardID

	slot        storage.Slot
	key         string
	codec       codec.Codec
	clock       clock.Clock
	ids         ids.Generator
	logger      *slog.Logger
	seed        bool
	onSaveError func(error)
	lastSaveErr error
}

// New returns an empty store that writes to slot. Nothing is loaded.
func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		key:    storage.DefaultKey,
		codec:  codec.JSON(),
		clock:  clock.Real(),
		ids:    ids.UUID(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a store holding the snapshot found in slot. An empty slot
// yields an empty store, or the sample boards when seeding is enabled.
func Open(ctx context.Context, slot storage.Slot, opts ...Option) (*Store, error) {
	s := New(slot, opts...)

	data, err := slot.Load(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		if s.seed {
			s.mu.Lock()
			s.seedSamples()
			saveErr := s.persistLocked()
			s.mu.Unlock()
			s.reportSaveError(saveErr)
			s.logger.Info("seeded sample boards", "count", len(s.boards))
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := s.codec.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	s.boards = snap.Boards
	s.current = snap.CurrentBoardID
	if s.current != nil && s.boardLocked(*s.current) == nil {
		s.logger.Warn("stored current board no longer exists", "board_id", *s.current)
		s.current = s.firstBoardID()
	}

	s.logger.Debug("loaded snapshot", "boards", len(s.boards), "codec", s.codec.Name())
	return s, nil
}

// Snapshot returns a deep copy of the full state
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// LastSaveError returns the error of the most recent snapshot write, or
// nil if it succeeded
func (s *Store) LastSaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaveErr
}

// Clear deletes every board, clears the selection and removes the
// storage key entirely
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards = nil
	s.current = nil
	if err := s.slot.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	s.lastSaveErr = nil
	s.logger.Info("cleared all board data")
	return nil
}

func (s *Store) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{Boards: s.boards, CurrentBoardID: s.current}
	out := snap.Clone()
	if out.Boards == nil {
		out.Boards = []models.Board{}
	}
	return out
}

// mutate runs fn under the lock and persists when fn reports it applied.
// The save-error handler runs after the lock is released.
func (s *Store) mutate(op string, fn func() bool) bool {
	applied, err := s.apply(fn)
	if !applied {
		s.logger.Debug("no matching target", "op", op)
		return false
	}
	s.reportSaveError(err)
	return true
}

func (s *Store) apply(fn func() bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn() {
		return false, nil
	}
	return true, s.persistLocked()
}

func (s *Store) persistLocked() error {
	data, err := s.codec.Marshal(s.snapshotLocked())
	if err != nil {
		s.lastSaveErr = fmt.Errorf("failed to encode snapshot: %w", err)
		return s.lastSaveErr
	}

	// Mutations are synchronous and not cancellable, so the write is too
	if err := s.slot.Save(context.Background(), s.key, data); err != nil {
		s.lastSaveErr = fmt.Errorf("failed to save snapshot: %w", err)
		return s.lastSaveErr
	}
	s.lastSaveErr = nil
	return nil
}

func (s *Store) reportSaveError(err error) {
	if err == nil {
		return
	}
	s.logger.Error("snapshot write failed, change kept in memory only", "error", err)
	if s.onSaveError != nil {
		s.onSaveError(err)
	}
}

// now returns a timestamp that survives an encode/decode round trip
func (s *Store) now() time.Time {
	return s.clock.Now().UTC().Round(0)
}

func (s *Store) newID(prefix string) string {
	return s.ids.New(prefix)
}

// ============================================================================
// Lookups. All return pointers into the live tree and must be called with
// the lock held.
// ============================================================================

func (s *Store) boardLocked(id types.BoardID) *models.Board {
	for i := range s.boards {
		if s.boards[i].ID == id {
			return &s.boards[i]
		}
	}
	return nil
}

func (s *Store) columnLocked(boardID types.BoardID, columnID types.ColumnID) (*models.Board, *models.Column) {
	b := s.boardLocked(boardID)
	if b == nil {
		return nil, nil
	}
	idx := b.ColumnIndex(columnID)
	if idx < 0 {
		return nil, nil
	}
	return b, &b.Columns[idx]
}

func (s *Store) ticketLocked(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID) (*models.Board, *models.Ticket) {
	b, col := s.columnLocked(boardID, columnID)
	if col == nil {
		return nil, nil
	}
	idx := col.TicketIndex(ticketID)
	if idx < 0 {
		return nil, nil
	}
	return b, &col.Tickets[idx]
}

func (s *Store) checklistLocked(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, checklistID types.ChecklistID) (*models.Board, *models.Ticket, *models.Checklist) {
	b, t := s.ticketLocked(boardID, columnID, ticketID)
	if t == nil {
		return nil, nil, nil
	}
	idx := t.ChecklistIndex(checklistID)
	if idx < 0 {
		return nil, nil, nil
	}
	return b, t, &t.Checklists[idx]
}

func (s *Store) firstBoardID() *types.BoardID {
	if len(s.boards) == 0 {
		return nil
	}
	id := s.boards[0].ID
	return &id
}

// touchTicket stamps the ticket and its owning board
func (s *Store) touchTicket(b *models.Board, t *models.Ticket) {
	now := s.now()
	t.UpdatedAt = now
	b.UpdatedAt = now
}
