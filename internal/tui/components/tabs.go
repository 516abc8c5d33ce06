package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one board in the tab bar
type Tab struct {
	Title   string
	Starred bool
}

// RenderTabs renders a tab bar with one tab per board.
// selectedIdx indicates which tab is active (0-indexed, -1 for none)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮ ╭────────╮                      [Notification]
//	│ Tab1 │ │ ★ Tab2 │──────────────────────
//	      active    inactive
func RenderTabs(tabs []Tab, selectedIdx int, width int, notificationContent string) string {
	var renderedTabs []string

	for i, tab := range tabs {
		name := truncate(tab.Title, 20)
		if tab.Starred {
			name = StarStyle.Render("★") + " " + name
		}
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(name))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
