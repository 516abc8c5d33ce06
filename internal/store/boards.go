package store

import (
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// CreateBoard appends a new board with the default columns and selects it.
// An empty color falls back to models.DefaultColor. Callers validate the
// title.
func (s *Store) CreateBoard(title, color string) types.BoardID {
	if color == "" {
		color = models.DefaultColor
	}

	var id types.BoardID
	s.mutate("CreateBoard", func() bool {
		now := s.now()
		id = types.BoardID(s.newID(types.BoardPrefix))

		columns := make([]models.Column, 0, len(models.DefaultColumnTitles))
		for _, name := range models.DefaultColumnTitles {
			columns = append(columns, models.Column{
				ID:      types.ColumnID(s.newID(types.ColumnPrefix)),
				Title:   name,
				Tickets: []models.Ticket{},
			})
		}

		s.boards = append(s.boards, models.Board{
			ID:        id,
			Title:     title,
			Color:     color,
			Columns:   columns,
			CreatedAt: now,
			UpdatedAt: now,
		})
		current := id
		s.current = &current
		return true
	})

	s.logger.Info("board created", "board_id", id)
	return id
}

// UpdateBoard merges the provided fields into the board
func (s *Store) UpdateBoard(id types.BoardID, u models.BoardUpdate) bool {
	return s.mutate("UpdateBoard", func() bool {
		b := s.boardLocked(id)
		if b == nil {
			return false
		}
		if u.Title != nil {
			b.Title = *u.Title
		}
		if u.Color != nil {
			b.Color = *u.Color
		}
		b.UpdatedAt = s.now()
		return true
	})
}

// DeleteBoard removes the board and everything it owns. The selection
// always moves to the first remaining board, or nil when none remain.
func (s *Store) DeleteBoard(id types.BoardID) bool {
	return s.mutate("DeleteBoard", func() bool {
		idx := -1
		for i := range s.boards {
			if s.boards[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}

		s.boards = append(s.boards[:idx], s.boards[idx+1:]...)
		s.current = s.firstBoardID()
		return true
	})
}

// ToggleStarBoard flips the starred flag. Starring is metadata, so
// updatedAt is left alone.
func (s *Store) ToggleStarBoard(id types.BoardID) bool {
	return s.mutate("ToggleStarBoard", func() bool {
		b := s.boardLocked(id)
		if b == nil {
			return false
		}
		b.Starred = !b.Starred
		return true
	})
}

// SetCurrentBoard selects an existing board
func (s *Store) SetCurrentBoard(id types.BoardID) bool {
	return s.mutate("SetCurrentBoard", func() bool {
		if s.boardLocked(id) == nil {
			return false
		}
		current := id
		s.current = &current
		return true
	})
}

// CurrentBoardID returns the selected board id, or nil
func (s *Store) CurrentBoardID() *types.BoardID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// CurrentBoard returns a copy of the selected board
func (s *Store) CurrentBoard() (models.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Board{}, false
	}
	b := s.boardLocked(*s.current)
	if b == nil {
		return models.Board{}, false
	}
	return b.Clone(), true
}

// Boards returns a copy of every board in order
func (s *Store) Boards() []models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Board, len(s.boards))
	for i, b := range s.boards {
		out[i] = b.Clone()
	}
	return out
}

// Board returns a copy of one board
func (s *Store) Board(id types.BoardID) (models.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.boardLocked(id)
	if b == nil {
		return models.Board{}, false
	}
	return b.Clone(), true
}

// StarredBoards returns copies of the starred boards in board order
func (s *Store) StarredBoards() []models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Board{}
	for _, b := range s.boards {
		if b.Starred {
			out = append(out, b.Clone())
		}
	}
	return out
}
