package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/pinboard/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
// Navigation also answers to the arrow keys.
type keyMap struct {
	AddTicket    key.Binding
	DeleteTicket key.Binding
	ViewTicket   key.Binding
	EditTicket   key.Binding
	GrabTicket   key.Binding

	CreateColumn key.Binding
	DeleteColumn key.Binding
	GrabColumn   key.Binding

	CreateBoard key.Binding
	StarBoard   key.Binding
	NextBoard   key.Binding
	PrevBoard   key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTicket key.Binding
	NextTicket key.Binding

	Confirm key.Binding
	Deny    key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}

	return keyMap{
		AddTicket:    bind("add ticket", km.AddTicket),
		DeleteTicket: bind("delete ticket", km.DeleteTicket),
		ViewTicket:   bind("view ticket", km.ViewTicket),
		EditTicket:   bind("edit ticket", km.EditTicket),
		GrabTicket:   bind("grab/drop ticket", km.GrabTicket),

		CreateColumn: bind("add column", km.CreateColumn),
		DeleteColumn: bind("delete column", km.DeleteColumn),
		GrabColumn:   bind("grab/drop column", km.GrabColumn),

		CreateBoard: bind("new board", km.CreateBoard),
		StarBoard:   bind("star board", km.StarBoard),
		NextBoard:   bind("next board", km.NextBoard),
		PrevBoard:   bind("previous board", km.PrevBoard),

		PrevColumn: bind("left", km.PrevColumn, "left"),
		NextColumn: bind("right", km.NextColumn, "right"),
		PrevTicket: bind("up", km.PrevTicket, "up"),
		NextTicket: bind("down", km.NextTicket, "down"),

		Confirm: bind("yes", "y", "Y"),
		Deny:    bind("no", "n", "N"),
		Cancel:  bind("cancel", km.Cancel),
		Help:    bind("help", km.Help),
		Quit:    bind("quit", km.Quit, "ctrl+c"),
	}
}
