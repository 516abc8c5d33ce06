package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pinboard/internal/notify"
	"github.com/thenoetrevino/pinboard/internal/tui/theme"
)

func toastStyle(level notify.Level) (icon, fg string) {
	switch level {
	case notify.LevelSuccess:
		return "✓", theme.SuccessFg
	case notify.LevelWarning:
		return "⚠", theme.WarningFg
	case notify.LevelError:
		return "✕", theme.ErrorFg
	default:
		return "🔔", theme.InfoFg
	}
}

// RenderToast renders a compact inline notification (for the tab bar)
func RenderToast(t notify.Toast) string {
	icon, fg := toastStyle(t.Level)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(icon + " " + t.Message)
}

// RenderToasts renders the newest toast and a count of the others
func RenderToasts(toasts []notify.Toast) string {
	if len(toasts) == 0 {
		return ""
	}
	out := RenderToast(toasts[len(toasts)-1])
	if extra := len(toasts) - 1; extra > 0 {
		out += SubtleStyle.Render(" +" + strconv.Itoa(extra))
	}
	return out
}
