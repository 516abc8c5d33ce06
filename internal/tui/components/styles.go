// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pinboard/internal/config"
	"github.com/thenoetrevino/pinboard/internal/tui/theme"
)

const (
	ColumnWidth       = 32 // content width of a column
	CardHeight        = 4  // border(2) + title + meta line
	cardTitleMaxWidth = 27
	columnOverhead    = 5 // top border + header + indicator + bottom padding + bottom border
)

// These are cached to avoid recomputing on every redraw.
var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of tickets as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, board header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for hints, empty states and metadata
	SubtleStyle lipgloss.Style

	// StarStyle colors the starred marker
	StarStyle lipgloss.Style

	// LabelStyle renders label chips
	LabelStyle lipgloss.Style

	// InputBoxStyle frames the single line input dialogs
	InputBoxStyle lipgloss.Style

	// FormBoxStyle frames huh forms
	FormBoxStyle lipgloss.Style

	// ConfirmBoxStyle frames deletion confirmations
	ConfirmBoxStyle lipgloss.Style

	// DetailBoxStyle frames the ticket detail view and the help screen
	DetailBoxStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true).Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1, 1, 1).
		Width(ColumnWidth + 4)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	StarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Star))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Label))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	InputBoxStyle = box.BorderForeground(lipgloss.Color(theme.SuccessFg)).Width(50)
	FormBoxStyle = box.BorderForeground(lipgloss.Color(theme.Accent)).Width(60)
	ConfirmBoxStyle = box.BorderForeground(lipgloss.Color(theme.ErrorFg)).Width(50)
	DetailBoxStyle = box.BorderForeground(lipgloss.Color(theme.InfoFg))
}
