package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// FormKeyMap is the huh keymap shared by the board and ticket forms
func FormKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	// Descriptions are markdown, so shift+enter joins the default
	// newline keys (alt+enter, ctrl+j)
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	// Tags toggle with either key
	keymap.MultiSelect.Toggle = key.NewBinding(
		key.WithKeys("space", "x"),
		key.WithHelp("space / x", "toggle tag"),
	)

	return keymap
}
