package models

import "github.com/thenoetrevino/pinboard/internal/types"

// Checklist is an ordered list of items attached to a ticket
type Checklist struct {
	ID    types.ChecklistID `json:"id"`
	Title string            `json:"title"`
	Items []ChecklistItem   `json:"items"`
}

// ChecklistItem is a single line of a checklist
type ChecklistItem struct {
	ID        types.ItemID `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
}

// ChecklistItemUpdate is a partial checklist item edit
type ChecklistItemUpdate struct {
	Text      *string
	Completed *bool
}

// Clone returns a deep copy of the checklist
func (c Checklist) Clone() Checklist {
	out := c
	if c.Items != nil {
		out.Items = append([]ChecklistItem{}, c.Items...)
	}
	return out
}

// ItemIndex returns the position of the item with the given id, or -1
func (c *Checklist) ItemIndex(id types.ItemID) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Apply merges the update into the item
func (i *ChecklistItem) Apply(u ChecklistItemUpdate) {
	if u.Text != nil {
		i.Text = *u.Text
	}
	if u.Completed != nil {
		i.Completed = *u.Completed
	}
}

func (c Checklist) GetID() string {
	return string(c.ID)
}

func (i ChecklistItem) GetID() string {
	return string(i.ID)
}
