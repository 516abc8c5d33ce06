package models

import (
	"time"

	"github.com/thenoetrevino/pinboard/internal/types"
)

// DefaultColor is the palette token given to boards created without a color
const DefaultColor = "from-indigo-500 to-purple-500"

// Palette lists the color tokens a board can carry, in picker order
var Palette = []string{
	DefaultColor,
	"from-pink-500 to-rose-500",
	"from-blue-500 to-indigo-500",
	"from-amber-400 to-orange-500",
	"from-emerald-400 to-cyan-500",
}

// DefaultColumnTitles are the columns every freshly created board starts with
var DefaultColumnTitles = []string{"To Do", "In Progress", "Done"}

// Board is the root of the ownership tree: it exclusively owns its columns,
// which own their tickets, which own their checklists.
type Board struct {
	ID        types.BoardID `json:"id"`
	Title     string        `json:"title"`
	Color     string        `json:"color"`
	Starred   bool          `json:"starred"`
	Columns   []Column      `json:"columns"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BoardUpdate carries the board fields a caller may change.
// Nil pointers leave the field untouched.
type BoardUpdate struct {
	Title *string
	Color *string
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := b
	if b.Columns != nil {
		out.Columns = make([]Column, len(b.Columns))
		for i, c := range b.Columns {
			out.Columns[i] = c.Clone()
		}
	}
	return out
}

// ColumnIndex returns the position of the column with the given id, or -1
func (b *Board) ColumnIndex(id types.ColumnID) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// TicketCount returns the number of tickets across all columns
func (b Board) TicketCount() int {
	total := 0
	for _, c := range b.Columns {
		total += len(c.Tickets)
	}
	return total
}

// IsPaletteColor reports whether token is one of the known palette tokens
func IsPaletteColor(token string) bool {
	for _, c := range Palette {
		if c == token {
			return true
		}
	}
	return false
}

// GetID returns the board id as a plain string
func (b Board) GetID() string {
	return string(b.ID)
}
