package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// refreshInterval is how often the board redraws so expired toasts vanish
const refreshInterval = 500 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
