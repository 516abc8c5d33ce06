package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/pinboard/internal/activity"
	"github.com/thenoetrevino/pinboard/internal/markdown"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/tui/components"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// detail box chrome: border(2) + padding(2) horizontally, border(2) + padding(2) + footer(2) vertically
const (
	detailChromeWidth  = 6
	detailChromeHeight = 6
)

func (m *Model) openDetail() {
	b, col, t, ok := m.selectedTicket()
	if !ok {
		return
	}
	m.detailTicket = ticketRef{Board: b.ID, Column: col.ID, Ticket: t.ID}
	m.resizeDetail()
	m.detail.SetContent(m.detailContent(b, col, t))
	m.detail.GotoTop()
	m.UIState.SetMode(state.TicketDetailMode)
}

// detailWidth is the text width inside the detail box
func (m Model) detailWidth() int {
	w := m.UIState.Width()
	if w == 0 {
		return markdown.DefaultWidth
	}
	return max(min(w-8, 100)-detailChromeWidth, 20)
}

func (m *Model) resizeDetail() {
	m.detail.SetWidth(m.detailWidth())
	m.detail.SetHeight(max(m.UIState.Height()-4-detailChromeHeight, 5))
}

// handleDetailMode scrolls the detail view; the view or cancel key closes it
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.ViewTicket), key.Matches(msg, m.keys.Quit):
		m.detailTicket = ticketRef{}
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	case key.Matches(msg, m.keys.NextTicket):
		m.detail.ScrollDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTicket):
		m.detail.ScrollUp(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// detailContent lays out one ticket for the detail view
func (m Model) detailContent(b models.Board, col models.Column, t models.Ticket) string {
	var sb strings.Builder
	now := m.App.Clock.Now()

	sb.WriteString(components.TitleStyle.Render(t.Title) + "\n")
	sb.WriteString(components.SubtleStyle.Render(fmt.Sprintf("%s › %s", b.Title, col.Title)) + "\n\n")

	if len(t.Labels) > 0 {
		var chips []string
		for _, l := range t.Labels {
			chips = append(chips, components.LabelStyle.Render("["+l+"]"))
		}
		sb.WriteString(strings.Join(chips, " ") + "\n")
	}
	if t.DueDate != nil {
		sb.WriteString("Due: " + t.DueDate.Format("Mon Jan 2 2006"))
		if t.DueDate.Before(now) {
			sb.WriteString(" (overdue)")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(components.SubtleStyle.Render(fmt.Sprintf("created %s, updated %s",
		activity.Describe(t.CreatedAt, now), activity.Describe(t.UpdatedAt, now))) + "\n")

	if desc := markdown.Render(t.Description, m.detailWidth()); desc != "" {
		sb.WriteString("\n" + strings.TrimRight(desc, "\n") + "\n")
	} else {
		sb.WriteString("\n" + components.SubtleStyle.Italic(true).Render("No description") + "\n")
	}

	for _, cl := range t.Checklists {
		done := 0
		for _, it := range cl.Items {
			if it.Completed {
				done++
			}
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d/%d)\n", cl.Title, done, len(cl.Items)))
		for _, it := range cl.Items {
			mark := "[ ]"
			if it.Completed {
				mark = "[x]"
			}
			sb.WriteString("  " + mark + " " + it.Text + "\n")
		}
	}
	return sb.String()
}
