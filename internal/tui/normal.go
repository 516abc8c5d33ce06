package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/tui/huhforms"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevColumn):
		m.moveSelection(-1, 0)
	case key.Matches(msg, m.keys.NextColumn):
		m.moveSelection(1, 0)
	case key.Matches(msg, m.keys.PrevTicket):
		m.moveSelection(0, -1)
	case key.Matches(msg, m.keys.NextTicket):
		m.moveSelection(0, 1)

	case key.Matches(msg, m.keys.GrabTicket):
		m.grabTicket()
	case key.Matches(msg, m.keys.GrabColumn):
		m.grabColumn()

	case key.Matches(msg, m.keys.AddTicket):
		if _, _, ok := m.selectedColumn(); ok {
			cmd := m.startInput(state.AddTicketMode, "Ticket title")
			return m, cmd
		}
		m.App.Notifier.Warning("Add a column first")
	case key.Matches(msg, m.keys.CreateColumn):
		if _, ok := m.currentBoard(); ok {
			cmd := m.startInput(state.AddColumnMode, "Column title")
			return m, cmd
		}
		m.App.Notifier.Warning("Create a board first")

	case key.Matches(msg, m.keys.DeleteTicket):
		if _, _, _, ok := m.selectedTicket(); ok {
			m.UIState.SetMode(state.DeleteTicketConfirmMode)
		}
	case key.Matches(msg, m.keys.DeleteColumn):
		if _, _, ok := m.selectedColumn(); ok {
			m.UIState.SetMode(state.DeleteColumnConfirmMode)
		}

	case key.Matches(msg, m.keys.ViewTicket):
		m.openDetail()
	case key.Matches(msg, m.keys.EditTicket):
		return m.openTicketForm()

	case key.Matches(msg, m.keys.CreateBoard):
		return m.openBoardForm()
	case key.Matches(msg, m.keys.StarBoard):
		m.toggleStar()
	case key.Matches(msg, m.keys.NextBoard):
		m.switchBoard(1)
	case key.Matches(msg, m.keys.PrevBoard):
		m.switchBoard(-1)

	case key.Matches(msg, m.keys.Help):
		m.UIState.SetMode(state.HelpMode)
	}
	return m, nil
}

// moveSelection moves the cursor by dColumn columns and dTicket tickets.
// Changing column keeps the ticket index when the new column is long enough.
func (m Model) moveSelection(dColumn, dTicket int) {
	b, ok := m.currentBoard()
	if !ok || len(b.Columns) == 0 {
		return
	}
	m.UIState.SetSelectedColumn(m.UIState.SelectedColumn() + dColumn)
	m.UIState.SetSelectedTicket(m.UIState.SelectedTicket() + dTicket)
	m.UIState.ClampSelection(ticketCounts(b))
}

func (m Model) toggleStar() {
	b, ok := m.currentBoard()
	if !ok {
		return
	}
	m.App.Store.ToggleStarBoard(b.ID)
	if b.Starred {
		m.App.Notifier.Info("☆ " + b.Title + " unstarred")
	} else {
		m.App.Notifier.Success("★ " + b.Title + " starred")
	}
}

// switchBoard selects the next (1) or previous (-1) board, wrapping around
func (m Model) switchBoard(delta int) {
	boards := m.App.Store.Boards()
	if len(boards) < 2 {
		return
	}
	current := 0
	if id := m.App.Store.CurrentBoardID(); id != nil {
		for i, b := range boards {
			if b.ID == *id {
				current = i
				break
			}
		}
	}
	next := (current + delta + len(boards)) % len(boards)
	m.App.Store.SetCurrentBoard(boards[next].ID)
	m.UIState.ResetSelection()
}

func (m Model) openBoardForm() (tea.Model, tea.Cmd) {
	m.boardForm = huhforms.NewBoardFormValues()
	m.form = huhforms.CreateBoardForm(m.boardForm).WithTheme(m.formTheme)
	m.UIState.SetMode(state.BoardFormMode)
	return m, m.form.Init()
}

func (m Model) openTicketForm() (tea.Model, tea.Cmd) {
	b, col, t, ok := m.selectedTicket()
	if !ok {
		return m, nil
	}
	m.editing = ticketRef{Board: b.ID, Column: col.ID, Ticket: t.ID}
	m.ticketForm = huhforms.TicketFormValuesFrom(t)
	m.form = huhforms.CreateTicketForm(m.ticketForm).WithTheme(m.formTheme)
	m.UIState.SetMode(state.TicketFormMode)
	return m, m.form.Init()
}
