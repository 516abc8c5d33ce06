package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pinboard/internal/dnd"
	"github.com/thenoetrevino/pinboard/internal/tui/components"
	"github.com/thenoetrevino/pinboard/internal/tui/state"
)

// View renders the board with the modal of the current mode on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}
	if modal := m.viewModal(); modal != "" {
		layers = append(layers, centeredLayer(modal, m.UIState.Width(), m.UIState.Height()))
	}
	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// centeredLayer creates a layer positioned at the center of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// viewBoard renders tabs, columns and the status bar
func (m Model) viewBoard() string {
	boards := m.App.Store.Boards()
	tabs := make([]components.Tab, len(boards))
	selected := -1
	current := m.App.Store.CurrentBoardID()
	for i, b := range boards {
		tabs[i] = components.Tab{Title: b.Title, Starred: b.Starred}
		if current != nil && b.ID == *current {
			selected = i
		}
	}
	header := components.RenderTabs(tabs, selected, m.UIState.Width(), components.RenderToasts(m.App.Notifier.All()))

	b, ok := m.currentBoard()
	var body string
	switch {
	case !ok:
		body = components.SubtleStyle.Padding(1, 2).Render(
			fmt.Sprintf("No boards yet. Press %s to create one.", m.keys.CreateBoard.Help().Key))
	case len(b.Columns) == 0:
		body = components.SubtleStyle.Padding(1, 2).Render(
			fmt.Sprintf("This board has no columns. Press %s to add one.", m.keys.CreateColumn.Help().Key))
	default:
		body = m.viewColumns()
	}

	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.UIState.Width(),
		Left:  m.statusText(),
	})
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", status)
}

// viewColumns renders the visible columns, showing the drop preview
// while something is grabbed
func (m Model) viewColumns() string {
	b, _ := m.currentBoard()
	cols, grabbedCol, grabbedTicket := previewColumns(b, m.DragState)

	selCol := m.UIState.SelectedColumn()
	if m.DragState.Active() {
		selCol = grabbedCol
	}
	m.UIState.EnsureSelectionVisible(selCol)

	start := m.UIState.ViewportOffset()
	end := min(start+m.UIState.ViewportSize(), len(cols))
	now := m.App.Clock.Now()

	var rendered []string
	if start > 0 {
		rendered = append(rendered, components.SubtleStyle.Render("◀"))
	}
	for i := start; i < end; i++ {
		props := components.ColumnProps{
			Column:         cols[i],
			Selected:       i == selCol,
			SelectedTicket: -1,
			GrabbedTicket:  -1,
			Height:         m.UIState.ContentHeight(),
			Now:            now,
		}
		switch {
		case m.DragState.Active() && grabbedTicket < 0:
			props.Grabbed = i == grabbedCol
		case m.DragState.Active():
			if i == grabbedCol {
				props.GrabbedTicket = grabbedTicket
			}
		case i == selCol:
			props.SelectedTicket = m.UIState.SelectedTicket()
		}
		rendered = append(rendered, components.RenderColumn(props), "  ")
	}
	if end < len(cols) {
		rendered = append(rendered, components.SubtleStyle.Render("▶"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) statusText() string {
	switch m.UIState.Mode() {
	case state.GrabMode:
		col, idx := m.DragState.Target()
		if m.DragState.Kind() == dnd.KindColumn {
			return fmt.Sprintf("Moving column to position %d  (space/m drop, esc cancel)", col+1)
		}
		return fmt.Sprintf("Moving ticket to column %d, slot %d  (space/m drop, esc cancel)", col+1, idx+1)
	case state.TicketDetailMode:
		return "Ticket detail  (j/k scroll, esc close)"
	}
	return ""
}

// viewModal renders the dialog of the current mode, if any
func (m Model) viewModal() string {
	switch m.UIState.Mode() {
	case state.AddTicketMode, state.AddColumnMode:
		title := "New ticket"
		if m.UIState.Mode() == state.AddColumnMode {
			title = "New column"
		}
		return components.InputBoxStyle.Render(
			components.TitleStyle.Render(title) + "\n\n" + m.input.View() + "\n\n" +
				components.SubtleStyle.Render("enter: save  esc: cancel"))

	case state.DeleteTicketConfirmMode:
		_, _, t, _ := m.selectedTicket()
		return components.ConfirmBoxStyle.Render(fmt.Sprintf("Delete ticket '%s'?\n\n%s", t.Title,
			components.SubtleStyle.Render("y: delete  n: keep")))

	case state.DeleteColumnConfirmMode:
		_, col, _ := m.selectedColumn()
		msg := fmt.Sprintf("Delete column '%s'?", col.Title)
		if n := len(col.Tickets); n > 0 {
			msg += fmt.Sprintf("\nIts %d tickets will be deleted too.", n)
		}
		return components.ConfirmBoxStyle.Render(msg + "\n\n" + components.SubtleStyle.Render("y: delete  n: keep"))

	case state.BoardFormMode, state.TicketFormMode:
		if m.form == nil {
			return ""
		}
		return components.FormBoxStyle.Render(m.form.View())

	case state.TicketDetailMode:
		return components.DetailBoxStyle.Width(m.detailWidth() + detailChromeWidth).Render(
			m.detail.View() + "\n\n" + components.SubtleStyle.Render("esc: close"))

	case state.HelpMode:
		return components.DetailBoxStyle.Width(54).Render(m.helpText())
	}
	return ""
}
