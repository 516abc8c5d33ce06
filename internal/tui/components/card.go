package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/tui/theme"
)

// CardProps controls how a ticket card is drawn
type CardProps struct {
	Ticket   models.Ticket
	Selected bool
	Grabbed  bool
	Now      time.Time
}

// RenderCard renders a single ticket as a card
//
//	╭──────────────────────────────╮
//	│ {Ticket Title}               │
//	│ [label] ☑ 1/3 ⏰ Mar 4        │
//	╰──────────────────────────────╯
//
// The card has a fixed height of CardHeight lines.
func RenderCard(props CardProps) string {
	title := truncate(props.Ticket.Title, cardTitleMaxWidth)
	if props.Grabbed {
		title = "✥ " + title
	}
	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n" + renderCardMeta(props.Ticket, props.Now)

	style := CardStyle
	switch {
	case props.Grabbed:
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(content)
}

// renderCardMeta renders labels, checklist progress and due date on one line
func renderCardMeta(t models.Ticket, now time.Time) string {
	var parts []string
	for _, label := range t.Labels {
		parts = append(parts, LabelStyle.Render("["+label+"]"))
	}
	if done, total := t.Progress(); total > 0 {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("☑ %d/%d", done, total)))
	}
	if t.DueDate != nil {
		due := SubtleStyle
		if !now.IsZero() && t.DueDate.Before(now) {
			due = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg))
		}
		parts = append(parts, due.Render("⏰ "+t.DueDate.Format("Jan 2")))
	}
	if len(parts) == 0 {
		return SubtleStyle.Italic(true).Render("no details")
	}

	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > ColumnWidth {
		// long label lists are clipped to the card width
		line = lipgloss.NewStyle().MaxWidth(ColumnWidth).Render(line)
	}
	return line
}

// truncate cuts s to at most width terminal cells, ellipsis included
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
