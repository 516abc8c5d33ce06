package types

// ID types give each string identifier its place in the board tree.
// IDs are only unique within their containing scope, so a TicketID on
// its own is not enough to locate a ticket; callers always pass the
// full BoardID → ColumnID → TicketID path.

// BoardID identifies a board in the store
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// TicketID identifies a ticket within a column
type TicketID string

// ChecklistID identifies a checklist within a ticket
type ChecklistID string

// ItemID identifies a checklist item within a checklist
type ItemID string

// ID prefixes used when generating new identifiers
const (
	BoardPrefix     = "board"
	ColumnPrefix    = "col"
	TicketPrefix    = "tick"
	ChecklistPrefix = "checklist"
	ItemPrefix      = "item"
)

// String conversions keep fmt and flag handling terse at call sites

func (id BoardID) String() string {
	return string(id)
}

func (id ColumnID) String() string {
	return string(id)
}

func (id TicketID) String() string {
	return string(id)
}

func (id ChecklistID) String() string {
	return string(id)
}

func (id ItemID) String() string {
	return string(id)
}
