package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Left  string // mode or grab description
	Right string // key hint
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := props.Left
	if left == "" {
		left = "Pinboard"
	}
	right := props.Right
	if right == "" {
		right = "press ? for help"
	}

	leftRendered := SubtleStyle.Render(left)
	rightRendered := SubtleStyle.Render(right)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
