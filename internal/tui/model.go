package tui

import (
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/pinboard/internal/app"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/tui/components"
	"github.com/thenoetrevino/pinboard/internal/tui/huhforms"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// ticketRef pins a ticket while a form or the detail view is open
type ticketRef struct {
	Board  types.BoardID
	Column types.ColumnID
	Ticket types.TicketID
}

// Model is the board view. The store owns all board data; the model
// keeps only selection, mode and in-progress input.
type Model struct {
	App  *app.App
	keys keyMap

	UIState   *state.UIState
	DragState *state.DragState

	input textinput.Model

	form       *huh.Form
	formTheme  huh.Theme
	boardForm  *huhforms.BoardFormValues
	ticketForm *huhforms.TicketFormValues
	editing    ticketRef

	detail       viewport.Model
	detailTicket ticketRef
}

// New builds the model for an opened application
func New(a *app.App) Model {
	components.InitStyles(a.Config.ColorScheme)

	input := textinput.New()
	input.CharLimit = 200

	return Model{
		App:       a,
		keys:      newKeyMap(a.Config.KeyMappings),
		UIState:   state.NewUIState(),
		DragState: state.NewDragState(),
		input:     input,
		formTheme: huhforms.CreateTheme(a.Config.ColorScheme),
		detail:    viewport.New(),
	}
}

// Init starts the refresh ticker
func (m Model) Init() tea.Cmd {
	return tick()
}

// currentBoard returns the selected board
func (m Model) currentBoard() (models.Board, bool) {
	return m.App.Store.CurrentBoard()
}

// selectedTicket returns the ticket under the cursor
func (m Model) selectedTicket() (models.Board, models.Column, models.Ticket, bool) {
	b, ok := m.currentBoard()
	if !ok || len(b.Columns) == 0 {
		return b, models.Column{}, models.Ticket{}, false
	}
	col := b.Columns[min(m.UIState.SelectedColumn(), len(b.Columns)-1)]
	idx := m.UIState.SelectedTicket()
	if idx < 0 || idx >= len(col.Tickets) {
		return b, col, models.Ticket{}, false
	}
	return b, col, col.Tickets[idx], true
}

// selectedColumn returns the column under the cursor
func (m Model) selectedColumn() (models.Board, models.Column, bool) {
	b, ok := m.currentBoard()
	if !ok || len(b.Columns) == 0 {
		return b, models.Column{}, false
	}
	return b, b.Columns[min(m.UIState.SelectedColumn(), len(b.Columns)-1)], true
}

// clampSelection keeps the cursor on the current board after a change
func (m Model) clampSelection() {
	b, _ := m.currentBoard()
	m.UIState.ClampSelection(ticketCounts(b))
}

func ticketCounts(b models.Board) []int {
	counts := make([]int, len(b.Columns))
	for i, c := range b.Columns {
		counts[i] = len(c.Tickets)
	}
	return counts
}

func columnIDs(b models.Board) []string {
	out := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		out[i] = string(c.ID)
	}
	return out
}
