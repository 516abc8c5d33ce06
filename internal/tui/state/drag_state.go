package state

import "github.com/thenoetrevino/pinboard/internal/dnd"

// DragState tracks an item picked up with the keyboard until it is
// dropped or the grab is cancelled. Positions are indices into the board
// the grab started on.
type DragState struct {
	active      bool
	kind        dnd.Kind
	draggableID string

	sourceColumn int
	sourceIndex  int

	targetColumn int
	targetIndex  int
}

// NewDragState returns an idle drag state.
func NewDragState() *DragState {
	return &DragState{}
}

// StartCard picks up the ticket at index in column.
func (d *DragState) StartCard(ticketID string, column, index int) {
	*d = DragState{
		active:       true,
		kind:         dnd.KindCard,
		draggableID:  ticketID,
		sourceColumn: column,
		sourceIndex:  index,
		targetColumn: column,
		targetIndex:  index,
	}
}

// StartColumn picks up the column at index.
func (d *DragState) StartColumn(columnID string, index int) {
	*d = DragState{
		active:       true,
		kind:         dnd.KindColumn,
		draggableID:  columnID,
		sourceColumn: index,
		sourceIndex:  index,
		targetColumn: index,
		targetIndex:  index,
	}
}

// Active reports whether something is currently grabbed.
func (d *DragState) Active() bool {
	return d.active
}

// Kind returns what is grabbed.
func (d *DragState) Kind() dnd.Kind {
	return d.kind
}

// DraggableID returns the id of the grabbed item.
func (d *DragState) DraggableID() string {
	return d.draggableID
}

// Source returns the column and index the grab started at.
func (d *DragState) Source() (column, index int) {
	return d.sourceColumn, d.sourceIndex
}

// Target returns the column and index the item would land on.
// For a column grab both values are the target column position.
func (d *DragState) Target() (column, index int) {
	return d.targetColumn, d.targetIndex
}

// MoveTarget shifts the drop target by dColumn columns and dIndex slots.
// ticketCounts holds the ticket count of each column of the board.
// A column grab moves only horizontally.
func (d *DragState) MoveTarget(dColumn, dIndex int, ticketCounts []int) {
	if !d.active || len(ticketCounts) == 0 {
		return
	}

	if d.kind == dnd.KindColumn {
		d.targetColumn = clamp(d.targetColumn+dColumn, 0, len(ticketCounts)-1)
		d.targetIndex = d.targetColumn
		return
	}

	d.targetColumn = clamp(d.targetColumn+dColumn, 0, len(ticketCounts)-1)
	d.targetIndex = clamp(d.targetIndex+dIndex, 0, d.slots(d.targetColumn, ticketCounts))
}

// slots is the highest valid drop index in column: the grabbed card no
// longer occupies a slot in its own column.
func (d *DragState) slots(column int, ticketCounts []int) int {
	n := ticketCounts[column]
	if column == d.sourceColumn {
		return max(n-1, 0)
	}
	return n
}

// Drop builds the drop result for the current target. columnIDs lists
// the ids of the board's columns in order.
func (d *DragState) Drop(columnIDs []string) dnd.DropResult {
	result := d.result(columnIDs)
	if d.kind == dnd.KindColumn {
		result.Destination = &dnd.Location{DroppableID: dnd.BoardDroppable, Index: d.targetIndex}
	} else if d.targetColumn < len(columnIDs) {
		result.Destination = &dnd.Location{DroppableID: columnIDs[d.targetColumn], Index: d.targetIndex}
	}
	d.Clear()
	return result
}

// Cancel builds a drop result without a destination.
func (d *DragState) Cancel(columnIDs []string) dnd.DropResult {
	result := d.result(columnIDs)
	d.Clear()
	return result
}

func (d *DragState) result(columnIDs []string) dnd.DropResult {
	result := dnd.DropResult{Kind: d.kind, DraggableID: d.draggableID}
	if d.kind == dnd.KindColumn {
		result.Source = dnd.Location{DroppableID: dnd.BoardDroppable, Index: d.sourceIndex}
	} else if d.sourceColumn < len(columnIDs) {
		result.Source = dnd.Location{DroppableID: columnIDs[d.sourceColumn], Index: d.sourceIndex}
	}
	return result
}

// Clear drops the grab without building a result.
func (d *DragState) Clear() {
	*d = DragState{}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
