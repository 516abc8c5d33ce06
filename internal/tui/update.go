package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// Update routes messages to the handler of the current mode
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		m.resizeDetail()
		m.clampSelection()
		return m, nil

	case tickMsg:
		return m, tick()
	}

	// forms consume every message, not only keys
	switch m.UIState.Mode() {
	case state.BoardFormMode:
		return m.updateBoardForm(msg)
	case state.TicketFormMode:
		return m.updateTicketForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UIState.Mode() {
	case state.GrabMode:
		return m.handleGrabMode(keyMsg)
	case state.AddTicketMode, state.AddColumnMode:
		return m.handleInputMode(keyMsg)
	case state.DeleteTicketConfirmMode, state.DeleteColumnConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.TicketDetailMode:
		return m.handleDetailMode(keyMsg)
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(keyMsg)
	}
}
