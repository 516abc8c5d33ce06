package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tickets
	AddTicket    string `yaml:"add_ticket"`
	DeleteTicket string `yaml:"delete_ticket"`
	ViewTicket   string `yaml:"view_ticket"`
	EditTicket   string `yaml:"edit_ticket"`
	GrabTicket   string `yaml:"grab_ticket"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	DeleteColumn string `yaml:"delete_column"`
	GrabColumn   string `yaml:"grab_column"`

	// Boards
	CreateBoard string `yaml:"create_board"`
	StarBoard   string `yaml:"star_board"`
	NextBoard   string `yaml:"next_board"`
	PrevBoard   string `yaml:"prev_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTicket string `yaml:"prev_ticket"`
	NextTicket string `yaml:"next_ticket"`

	// Other
	Cancel string `yaml:"cancel"`
	Help   string `yaml:"help"`
	Quit   string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTicket:    "a",
		DeleteTicket: "d",
		ViewTicket:   "enter",
		EditTicket:   "e",
		GrabTicket:   "space",

		CreateColumn: "C",
		DeleteColumn: "X",
		GrabColumn:   "m",

		CreateBoard: "N",
		StarBoard:   "s",
		NextBoard:   "}",
		PrevBoard:   "{",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTicket: "k",
		NextTicket: "j",

		Cancel: "esc",
		Help:   "?",
		Quit:   "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	fill(&k.AddTicket, defaults.AddTicket)
	fill(&k.DeleteTicket, defaults.DeleteTicket)
	fill(&k.ViewTicket, defaults.ViewTicket)
	fill(&k.EditTicket, defaults.EditTicket)
	fill(&k.GrabTicket, defaults.GrabTicket)
	fill(&k.CreateColumn, defaults.CreateColumn)
	fill(&k.DeleteColumn, defaults.DeleteColumn)
	fill(&k.GrabColumn, defaults.GrabColumn)
	fill(&k.CreateBoard, defaults.CreateBoard)
	fill(&k.StarBoard, defaults.StarBoard)
	fill(&k.NextBoard, defaults.NextBoard)
	fill(&k.PrevBoard, defaults.PrevBoard)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTicket, defaults.PrevTicket)
	fill(&k.NextTicket, defaults.NextTicket)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.Help, defaults.Help)
	fill(&k.Quit, defaults.Quit)
}
