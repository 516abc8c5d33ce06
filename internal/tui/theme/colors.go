package theme

import "github.com/thenoetrevino/pinboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	ColumnBorder   string
	SelectedBorder string
	GrabbedBorder  string
	Star           string
	Label          string
	Subtle         string
	Normal         string
	SuccessFg      string
	InfoFg         string
	WarningFg      string
	ErrorFg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	ColumnBorder = colors.ColumnBorder
	SelectedBorder = colors.SelectedBorder
	GrabbedBorder = colors.GrabbedBorder
	Star = colors.Star
	Label = colors.Label
	Subtle = colors.Subtle
	Normal = colors.Normal
	SuccessFg = colors.SuccessFg
	InfoFg = colors.InfoFg
	WarningFg = colors.WarningFg
	ErrorFg = colors.ErrorFg
}
