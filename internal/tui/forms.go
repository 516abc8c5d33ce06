package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// formConfig holds configuration for generic form handling
type formConfig struct {
	onComplete func(m *Model)
}

// handleFormUpdate forwards msg to the open form and runs onComplete
// once the user submits it. Cancel closes the form without saving.
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		cfg.onComplete(&m)
		m.closeForm()
		return m, tea.ClearScreen
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.boardForm = nil
	m.ticketForm = nil
	m.editing = ticketRef{}
	m.UIState.SetMode(state.NormalMode)
}

func (m Model) updateBoardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormUpdate(msg, formConfig{onComplete: (*Model).finishBoardForm})
}

func (m Model) updateTicketForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleFormUpdate(msg, formConfig{onComplete: (*Model).finishTicketForm})
}

// finishBoardForm creates the board described by the submitted form
func (m *Model) finishBoardForm() {
	v := m.boardForm
	if v == nil || !v.Confirm {
		return
	}
	title := strings.TrimSpace(v.Title)
	if title == "" {
		m.App.Notifier.Warning(emptyTitleMessage)
		return
	}
	m.App.Store.CreateBoard(title, v.Color)
	m.UIState.ResetSelection()
	m.App.Notifier.Success("Board '" + title + "' created")
}

// finishTicketForm saves the edited ticket
func (m *Model) finishTicketForm() {
	v := m.ticketForm
	if v == nil || !v.Confirm {
		return
	}
	u, err := v.Update()
	if err != nil {
		m.App.Notifier.Warning(err.Error())
		return
	}
	ref := m.editing
	if !m.App.Store.UpdateTicket(ref.Board, ref.Column, ref.Ticket, u) {
		m.App.Notifier.Warning("Ticket no longer exists")
		return
	}
	m.App.Notifier.Success("Ticket saved")
}
