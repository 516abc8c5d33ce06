package models

import (
	"time"

	"github.com/thenoetrevino/pinboard/internal/types"
)

// Ticket represents a single card on the board.
// Labels, Checklists and DueDate are optional and nil until first set.
type Ticket struct {
	ID          types.TicketID `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Labels      []string       `json:"labels"`
	Checklists  []Checklist    `json:"checklists"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TicketUpdate encapsulates a partial ticket edit.
// Fields with pointers are optional - nil means don't update.
// ClearDueDate removes the due date and wins over DueDate.
type TicketUpdate struct {
	Title        *string
	Description  *string
	Labels       *[]string
	Checklists   *[]Checklist
	DueDate      *time.Time
	ClearDueDate bool
}

// Clone returns a deep copy of the ticket
func (t Ticket) Clone() Ticket {
	out := t
	if t.Labels != nil {
		out.Labels = append([]string{}, t.Labels...)
	}
	out.Checklists = cloneChecklists(t.Checklists)
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	return out
}

// Apply merges the update into the ticket. It does not touch timestamps.
func (t *Ticket) Apply(u TicketUpdate) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Labels != nil {
		t.Labels = append([]string{}, (*u.Labels)...)
	}
	if u.Checklists != nil {
		t.Checklists = cloneChecklists(*u.Checklists)
		if t.Checklists == nil {
			t.Checklists = []Checklist{}
		}
	}
	if u.DueDate != nil {
		due := *u.DueDate
		t.DueDate = &due
	}
	if u.ClearDueDate {
		t.DueDate = nil
	}
}

// ChecklistIndex returns the position of the checklist with the given id, or -1
func (t *Ticket) ChecklistIndex(id types.ChecklistID) int {
	for i := range t.Checklists {
		if t.Checklists[i].ID == id {
			return i
		}
	}
	return -1
}

// Progress returns completed and total checklist item counts
func (t Ticket) Progress() (done, total int) {
	for _, cl := range t.Checklists {
		for _, item := range cl.Items {
			total++
			if item.Completed {
				done++
			}
		}
	}
	return done, total
}

func cloneChecklists(in []Checklist) []Checklist {
	if in == nil {
		return nil
	}
	out := make([]Checklist, len(in))
	for i, cl := range in {
		out[i] = cl.Clone()
	}
	return out
}

// GetID returns the ticket id as a plain string
func (t Ticket) GetID() string {
	return string(t.ID)
}
