package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
)

// helpText lists the active key bindings grouped by what they act on
func (m Model) helpText() string {
	k := m.keys
	groups := []struct {
		title    string
		bindings []key.Binding
	}{
		{"TICKETS", []key.Binding{k.AddTicket, k.EditTicket, k.ViewTicket, k.DeleteTicket, k.GrabTicket}},
		{"COLUMNS", []key.Binding{k.CreateColumn, k.DeleteColumn, k.GrabColumn}},
		{"BOARDS", []key.Binding{k.CreateBoard, k.StarBoard, k.PrevBoard, k.NextBoard}},
		{"NAVIGATION", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevTicket, k.NextTicket}},
		{"OTHER", []key.Binding{k.Cancel, k.Help, k.Quit}},
	}

	var sb strings.Builder
	sb.WriteString("PINBOARD - Keyboard Shortcuts\n")
	for _, g := range groups {
		sb.WriteString("\n" + g.title + "\n")
		for _, b := range g.bindings {
			h := b.Help()
			sb.WriteString(fmt.Sprintf("  %-7s %s\n", h.Key, h.Desc))
		}
	}
	sb.WriteString("\nWhile moving, h/j/k/l pick the drop target.\n")
	sb.WriteString("Press any key to close")
	return sb.String()
}
