package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/tui/theme"
)

// ColumnProps controls how a column is drawn
type ColumnProps struct {
	Column         models.Column
	Selected       bool
	Grabbed        bool
	SelectedTicket int // -1 when no ticket of this column is selected
	GrabbedTicket  int // -1 when no ticket of this column is grabbed
	Height         int // total box height, 0 for auto
	Now            time.Time
}

// RenderColumn renders a complete column with its title and tickets
//
// Layout:
//
//	{Column Title} ({count})
//	▲ more above (if scrolled down)
//	{Ticket 1}
//	{Ticket 2}
//	...
//	▼ more below (if more tickets below)
//
// The column scrolls so that the selected or grabbed ticket stays visible.
func RenderColumn(props ColumnProps) string {
	tickets := props.Column.Tickets
	header := fmt.Sprintf("%s (%d)", props.Column.Title, len(tickets))
	if props.Grabbed {
		header = "✥ " + header
	}
	content := TitleStyle.Render(truncate(header, ColumnWidth)) + "\n"

	if len(tickets) == 0 {
		content += SubtleStyle.Italic(true).Padding(1, 0).Render("No tickets")
	} else {
		visible := len(tickets)
		if props.Height > 0 {
			visible = max((props.Height-columnOverhead)/CardHeight, 1)
		}

		focus := props.SelectedTicket
		if props.GrabbedTicket >= 0 {
			focus = props.GrabbedTicket
		}
		offset := scrollOffset(focus, visible, len(tickets))

		if offset > 0 {
			content += SubtleStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		end := min(offset+visible, len(tickets))
		var cards []string
		for i := offset; i < end; i++ {
			cards = append(cards, RenderCard(CardProps{
				Ticket:   tickets[i],
				Selected: props.Selected && i == props.SelectedTicket,
				Grabbed:  i == props.GrabbedTicket,
				Now:      props.Now,
			}))
		}
		content += lipgloss.JoinVertical(lipgloss.Left, cards...)

		if props.Height > 0 {
			used := 2 + (end-offset)*CardHeight
			if remaining := props.Height - 3 - used - 1; remaining > 0 {
				content += strings.Repeat("\n", remaining)
			}
		}
		if end < len(tickets) {
			content += "\n" + SubtleStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	switch {
	case props.Grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}
	return style.Render(content)
}

// scrollOffset returns the first visible ticket so that focus is on screen
func scrollOffset(focus, visible, total int) int {
	if focus < visible || total <= visible {
		return 0
	}
	return min(focus-visible+1, total-visible)
}
