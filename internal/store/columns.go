package store

import (
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// Columns returns copies of the board's columns in order. Unknown boards
// yield an empty, non-nil slice.
func (s *Store) Columns(boardID types.BoardID) []models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.boardLocked(boardID)
	if b == nil {
		return []models.Column{}
	}
	out := make([]models.Column, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = c.Clone()
	}
	return out
}

// SetColumns replaces the board's whole column sequence
func (s *Store) SetColumns(boardID types.BoardID, columns []models.Column) bool {
	return s.mutate("SetColumns", func() bool {
		b := s.boardLocked(boardID)
		if b == nil {
			return false
		}
		b.Columns = make([]models.Column, len(columns))
		for i, c := range columns {
			b.Columns[i] = c.Clone()
		}
		b.UpdatedAt = s.now()
		return true
	})
}

// AddColumn appends an empty column to the board
func (s *Store) AddColumn(boardID types.BoardID, title string) (types.ColumnID, bool) {
	var id types.ColumnID
	ok := s.mutate("AddColumn", func() bool {
		b := s.boardLocked(boardID)
		if b == nil {
			return false
		}
		id = types.ColumnID(s.newID(types.ColumnPrefix))
		b.Columns = append(b.Columns, models.Column{ID: id, Title: title, Tickets: []models.Ticket{}})
		b.UpdatedAt = s.now()
		return true
	})
	return id, ok
}

// UpdateColumn renames a column
func (s *Store) UpdateColumn(boardID types.BoardID, columnID types.ColumnID, title string) bool {
	return s.mutate("UpdateColumn", func() bool {
		b, col := s.columnLocked(boardID, columnID)
		if col == nil {
			return false
		}
		col.Title = title
		b.UpdatedAt = s.now()
		return true
	})
}

// DeleteColumn removes a column and its tickets
func (s *Store) DeleteColumn(boardID types.BoardID, columnID types.ColumnID) bool {
	return s.mutate("DeleteColumn", func() bool {
		b := s.boardLocked(boardID)
		if b == nil {
			return false
		}
		idx := b.ColumnIndex(columnID)
		if idx < 0 {
			return false
		}
		b.Columns = append(b.Columns[:idx], b.Columns[idx+1:]...)
		b.UpdatedAt = s.now()
		return true
	})
}

// MoveColumn removes the column at from and reinserts it at to. Indices
// are positions in the sequence at call time; either one out of range
// is a miss.
func (s *Store) MoveColumn(boardID types.BoardID, from, to int) bool {
	return s.mutate("MoveColumn", func() bool {
		b := s.boardLocked(boardID)
		if b == nil {
			return false
		}
		n := len(b.Columns)
		if from < 0 || from >= n || to < 0 || to >= n {
			return false
		}
		b.Columns = moveWithin(b.Columns, from, to)
		b.UpdatedAt = s.now()
		return true
	})
}

// moveWithin is a stable array move: the element at from ends at to and
// everything between shifts by one
func moveWithin[T any](items []T, from, to int) []T {
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	return insertAt(items, to, moved)
}

func insertAt[T any](items []T, idx int, item T) []T {
	var zero T
	items = append(items, zero)
	copy(items[idx+1:], items[idx:])
	items[idx] = item
	return items
}
