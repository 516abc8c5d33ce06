package models

import "github.com/thenoetrevino/pinboard/internal/types"

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Ticket order is significant and is never sorted implicitly.
type Column struct {
	ID      types.ColumnID `json:"id"`
	Title   string         `json:"title"`
	Tickets []Ticket       `json:"tickets"`
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := c
	if c.Tickets != nil {
		out.Tickets = make([]Ticket, len(c.Tickets))
		for i, t := range c.Tickets {
			out.Tickets[i] = t.Clone()
		}
	}
	return out
}

// TicketIndex returns the position of the ticket with the given id, or -1
func (c *Column) TicketIndex(id types.TicketID) int {
	for i := range c.Tickets {
		if c.Tickets[i].ID == id {
			return i
		}
	}
	return -1
}

// GetID returns the column id as a plain string
func (c Column) GetID() string {
	return string(c.ID)
}
