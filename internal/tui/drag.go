package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/dnd"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// missedMessage is shown when the grabbed item vanished before the drop
const missedMessage = "Nothing moved: the board changed during the drag"

func (m Model) grabTicket() {
	_, _, t, ok := m.selectedTicket()
	if !ok {
		return
	}
	m.DragState.StartCard(string(t.ID), m.UIState.SelectedColumn(), m.UIState.SelectedTicket())
	m.UIState.SetMode(state.GrabMode)
}

func (m Model) grabColumn() {
	_, col, ok := m.selectedColumn()
	if !ok {
		return
	}
	m.DragState.StartColumn(string(col.ID), m.UIState.SelectedColumn())
	m.UIState.SetMode(state.GrabMode)
}

// handleGrabMode moves the drop target until the item is dropped or the
// grab is cancelled
func (m Model) handleGrabMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	b, ok := m.currentBoard()
	if !ok {
		m.DragState.Clear()
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}
	counts := ticketCounts(b)

	switch {
	case key.Matches(msg, m.keys.PrevColumn):
		m.DragState.MoveTarget(-1, 0, counts)
	case key.Matches(msg, m.keys.NextColumn):
		m.DragState.MoveTarget(1, 0, counts)
	case key.Matches(msg, m.keys.PrevTicket):
		m.DragState.MoveTarget(0, -1, counts)
	case key.Matches(msg, m.keys.NextTicket):
		m.DragState.MoveTarget(0, 1, counts)

	case key.Matches(msg, m.keys.GrabTicket), key.Matches(msg, m.keys.GrabColumn):
		m.drop(b)
	case key.Matches(msg, m.keys.Cancel):
		m.cancelGrab(b)
	}
	return m, nil
}

// drop hands the drop to the board's coordinator and follows the moved
// item with the cursor
func (m Model) drop(b models.Board) {
	kind := m.DragState.Kind()
	col, idx := m.DragState.Target()
	result := m.DragState.Drop(columnIDs(b))
	m.UIState.SetMode(state.NormalMode)

	outcome := m.App.Coordinator(b.ID).OnDragEnd(result)
	switch outcome {
	case dnd.OutcomeMoved:
		m.UIState.SetSelectedColumn(col)
		if kind == dnd.KindCard {
			m.UIState.SetSelectedTicket(idx)
		}
	case dnd.OutcomeMissed:
		m.App.Notifier.Warning(missedMessage)
	}
	m.clampSelection()
}

func (m Model) cancelGrab(b models.Board) {
	m.App.Coordinator(b.ID).OnDragEnd(m.DragState.Cancel(columnIDs(b)))
	m.UIState.SetMode(state.NormalMode)
}

// previewColumns returns the columns as they would look after dropping
// at the current target, plus the position of the grabbed item in them
func previewColumns(b models.Board, d *state.DragState) (cols []models.Column, grabbedColumn, grabbedTicket int) {
	cols = b.Clone().Columns
	grabbedColumn, grabbedTicket = -1, -1
	if !d.Active() || len(cols) == 0 {
		return cols, grabbedColumn, grabbedTicket
	}

	srcCol, srcIdx := d.Source()
	dstCol, dstIdx := d.Target()
	if srcCol >= len(cols) || dstCol >= len(cols) {
		return cols, grabbedColumn, grabbedTicket
	}

	if d.Kind() == dnd.KindColumn {
		moved := cols[srcCol]
		cols = append(cols[:srcCol], cols[srcCol+1:]...)
		cols = append(cols[:dstCol], append([]models.Column{moved}, cols[dstCol:]...)...)
		return cols, dstCol, -1
	}

	src := cols[srcCol].Tickets
	if srcIdx >= len(src) {
		return cols, grabbedColumn, grabbedTicket
	}
	moved := src[srcIdx]
	cols[srcCol].Tickets = append(src[:srcIdx:srcIdx], src[srcIdx+1:]...)

	dst := cols[dstCol].Tickets
	dstIdx = min(dstIdx, len(dst))
	cols[dstCol].Tickets = append(dst[:dstIdx:dstIdx], append([]models.Ticket{moved}, dst[dstIdx:]...)...)
	return cols, dstCol, dstIdx
}
