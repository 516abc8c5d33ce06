package config

// ColorScheme defines all configurable TUI color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (board title, selections)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	GrabbedBorder  string `yaml:"grabbed_border"`
	Star           string `yaml:"star"`
	Label          string `yaml:"label"`

	// Text colors
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Toast colors
	SuccessFg string `yaml:"success_fg"`
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (indigo theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#6366F1",
		ColumnBorder:   "#585858",
		SelectedBorder: "#A855F7",
		GrabbedBorder:  "#F59E0B",
		Star:           "#FACC15",
		Label:          "#22D3EE",
		Subtle:         "#6B7280",
		Normal:         "#D0D0D0",
		SuccessFg:      "#22C55E",
		InfoFg:         "#3B82F6",
		WarningFg:      "#F59E0B",
		ErrorFg:        "#EF4444",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		ColumnBorder:   "#808080",
		SelectedBorder: "#FFFFFF",
		GrabbedBorder:  "#FFFFFF",
		Star:           "#FFFFFF",
		Label:          "#C0C0C0",
		Subtle:         "#808080",
		Normal:         "#C0C0C0",
		SuccessFg:      "#FFFFFF",
		InfoFg:         "#FFFFFF",
		WarningFg:      "#FFFFFF",
		ErrorFg:        "#FFFFFF",
	}
}

func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// fields lists every color slot so defaults and merges stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.ColumnBorder, &c.SelectedBorder, &c.GrabbedBorder,
		&c.Star, &c.Label, &c.Subtle, &c.Normal,
		&c.SuccessFg, &c.InfoFg, &c.WarningFg, &c.ErrorFg,
	}
}

// ApplyDefaults fills empty colors from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	src := preset.fields()
	for i, dst := range c.fields() {
		if *dst == "" {
			*dst = *src[i]
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, dst := range c.fields() {
		if *src[i] != "" {
			*dst = *src[i]
		}
	}
}
