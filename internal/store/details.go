package store

import (
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// Checklist and label edits. Each one touches the owning ticket and board.

// AddChecklist appends an empty checklist to the ticket
func (s *Store) AddChecklist(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, title string) (types.ChecklistID, bool) {
	var id types.ChecklistID
	ok := s.mutate("AddChecklist", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		id = types.ChecklistID(s.newID(types.ChecklistPrefix))
		t.Checklists = append(t.Checklists, models.Checklist{ID: id, Title: title, Items: []models.ChecklistItem{}})
		s.touchTicket(b, t)
		return true
	})
	return id, ok
}

// DeleteChecklist removes a checklist and its items
func (s *Store) DeleteChecklist(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, checklistID types.ChecklistID) bool {
	return s.mutate("DeleteChecklist", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		idx := t.ChecklistIndex(checklistID)
		if idx < 0 {
			return false
		}
		t.Checklists = append(t.Checklists[:idx], t.Checklists[idx+1:]...)
		s.touchTicket(b, t)
		return true
	})
}

// AddChecklistItem appends an unchecked item to the checklist
func (s *Store) AddChecklistItem(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, checklistID types.ChecklistID, text string) (types.ItemID, bool) {
	var id types.ItemID
	ok := s.mutate("AddChecklistItem", func() bool {
		b, t, cl := s.checklistLocked(boardID, columnID, ticketID, checklistID)
		if cl == nil {
			return false
		}
		id = types.ItemID(s.newID(types.ItemPrefix))
		cl.Items = append(cl.Items, models.ChecklistItem{ID: id, Text: text})
		s.touchTicket(b, t)
		return true
	})
	return id, ok
}

// UpdateChecklistItem merges the provided fields into the item
func (s *Store) UpdateChecklistItem(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, checklistID types.ChecklistID, itemID types.ItemID, u models.ChecklistItemUpdate) bool {
	return s.mutate("UpdateChecklistItem", func() bool {
		b, t, cl := s.checklistLocked(boardID, columnID, ticketID, checklistID)
		if cl == nil {
			return false
		}
		idx := cl.ItemIndex(itemID)
		if idx < 0 {
			return false
		}
		cl.Items[idx].Apply(u)
		s.touchTicket(b, t)
		return true
	})
}

// DeleteChecklistItem removes one item from the checklist
func (s *Store) DeleteChecklistItem(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, checklistID types.ChecklistID, itemID types.ItemID) bool {
	return s.mutate("DeleteChecklistItem", func() bool {
		b, t, cl := s.checklistLocked(boardID, columnID, ticketID, checklistID)
		if cl == nil {
			return false
		}
		idx := cl.ItemIndex(itemID)
		if idx < 0 {
			return false
		}
		cl.Items = append(cl.Items[:idx], cl.Items[idx+1:]...)
		s.touchTicket(b, t)
		return true
	})
}

// AddLabel appends the label. A label already present is appended again.
func (s *Store) AddLabel(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, label string) bool {
	return s.mutate("AddLabel", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		t.AddLabel(label)
		s.touchTicket(b, t)
		return true
	})
}

// RemoveLabel drops every occurrence of the label
func (s *Store) RemoveLabel(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, label string) bool {
	return s.mutate("RemoveLabel", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		t.RemoveLabel(label)
		s.touchTicket(b, t)
		return true
	})
}

// ToggleLabel removes the label if the ticket has it, otherwise appends it.
// It reports the found signal and whether the label is now present.
func (s *Store) ToggleLabel(boardID types.BoardID, columnID types.ColumnID, ticketID types.TicketID, label string) (present, ok bool) {
	ok = s.mutate("ToggleLabel", func() bool {
		b, t := s.ticketLocked(boardID, columnID, ticketID)
		if t == nil {
			return false
		}
		if t.HasLabel(label) {
			t.RemoveLabel(label)
		} else {
			t.AddLabel(label)
			present = true
		}
		s.touchTicket(b, t)
		return true
	})
	return present, ok
}
