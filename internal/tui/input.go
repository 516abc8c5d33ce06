package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

const emptyTitleMessage = "Title cannot be empty"

// startInput opens the single line input for a new ticket or column
func (m *Model) startInput(mode state.Mode, placeholder string) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.UIState.SetMode(mode)
	return m.input.Focus()
}

// handleInputMode handles keyboard input while typing a title
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.App.Notifier.Warning(emptyTitleMessage)
			return m, nil
		}
		if m.UIState.Mode() == state.AddTicketMode {
			m.addTicket(title)
		} else {
			m.addColumn(title)
		}
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.UIState.SetMode(state.NormalMode)
}

func (m Model) addTicket(title string) {
	b, col, ok := m.selectedColumn()
	if !ok {
		return
	}
	if _, ok := m.App.Store.AddTicket(b.ID, col.ID, title); !ok {
		return
	}
	m.UIState.SetSelectedTicket(len(col.Tickets))
	m.clampSelection()
}

func (m Model) addColumn(title string) {
	b, ok := m.currentBoard()
	if !ok {
		return
	}
	if _, ok := m.App.Store.AddColumn(b.ID, title); !ok {
		return
	}
	m.UIState.SetSelectedColumn(len(b.Columns))
	m.UIState.SetSelectedTicket(0)
	m.clampSelection()
}

// handleDeleteConfirm waits for y or n after a delete key
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.UIState.Mode() == state.DeleteTicketConfirmMode {
			if b, col, t, ok := m.selectedTicket(); ok {
				m.App.Store.DeleteTicket(b.ID, col.ID, t.ID)
			}
		} else if b, col, ok := m.selectedColumn(); ok {
			m.App.Store.DeleteColumn(b.ID, col.ID)
		}
		m.UIState.SetMode(state.NormalMode)
		m.clampSelection()

	case key.Matches(msg, m.keys.Deny), key.Matches(msg, m.keys.Cancel):
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}
