package store

import (
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// AddTicket appends a minimal ticket to the end of the column
func (s *Store) AddTicket(boardID types.BoardID, columnID types.ColumnID, title string) (types.TicketID, bool) {
	var id types.TicketID
	ok := s.mutate("AddTicket", func() bool {
		b, col := s.columnLocked(boardID, columnID)
		if col == nil {
			return false
		}
		now := s.now()
		id = types.TicketID(s.newID(types.TicketPrefix))
		col.Tickets = append(col.Tickets, models.Ticket{
			ID:        id,
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		})
		b.UpdatedAt = now
		return true
	})
	return id, ok
}

// Ticket returns a copy of one ticket
func (s *Store) Ticket(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID) (models.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, t := s.ticketLocked(boardID, columnID, ticketID)
	if t == nil {
		return models.Ticket{}, false
	}
	return t.Clone(), true
}

// UpdateTicket merges the provided fields into the ticket
func (s *Store) UpdateTicket(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, u models.TicketUpdate) bool {
	return s.mutate("UpdateTicket", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		t.Apply(u)
		if t.DueDate != nil {
			due := t.DueDate.UTC().Round(0)
			t.DueDate = &due
		}
		s.touchTicket(b, t)
		return true
	})
}

// DeleteTicket removes the ticket from its column
func (s *Store) DeleteTicket(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID) bool {
	return s.mutate("DeleteTicket", func() bool {
		b, col := s.columnLocked(boardID, columnID)
		if col == nil {
			return false
		}
		idx := col.TicketIndex(ticketID)
		if idx < 0 {
			return false
		}
		col.Tickets = append(col.Tickets[:idx], col.Tickets[idx+1:]...)
		b.UpdatedAt = s.now()
		return true
	})
}

// MoveTicket removes the ticket at srcIndex in the source column and
// inserts it at dstIndex in the destination column, which may be the same
// column. dstIndex is a position after the removal. Indices out of range
// are a miss.
func (s *Store) MoveTicket(boardID types.BoardID, srcColumn, dstColumn types.ColumnID, srcIndex, dstIndex int) bool {
	return s.mutate("MoveTicket", func() bool {
		b := s.boardLocked(boardID)
		if b == nil {
			return false
		}
		si, di := b.ColumnIndex(srcColumn), b.ColumnIndex(dstColumn)
		if si < 0 || di < 0 {
			return false
		}
		src, dst := &b.Columns[si], &b.Columns[di]
		if srcIndex < 0 || srcIndex >= len(src.Tickets) {
			return false
		}

		if si == di {
			if dstIndex < 0 || dstIndex >= len(src.Tickets) {
				return false
			}
			src.Tickets = moveWithin(src.Tickets, srcIndex, dstIndex)
		} else {
			if dstIndex < 0 || dstIndex > len(dst.Tickets) {
				return false
			}
			moved := src.Tickets[srcIndex]
			src.Tickets = append(src.Tickets[:srcIndex], src.Tickets[srcIndex+1:]...)
			dst.Tickets = insertAt(dst.Tickets, dstIndex, moved)
		}

		b.UpdatedAt = s.now()
		return true
	})
}
