package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/pinboard/internal/models"
)

var errEmptyTitle = errors.New("title cannot be empty")

// BoardFormValues holds the fields bound to the board form
type BoardFormValues struct {
	Title   string
	Color   string
	Confirm bool
}

// NewBoardFormValues starts the form on the default palette color
func NewBoardFormValues() *BoardFormValues {
	return &BoardFormValues{Color: models.DefaultColor, Confirm: true}
}

// PaletteOptions lists the board palette as select options
func PaletteOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(models.Palette))
	for _, token := range models.Palette {
		options = append(options, huh.NewOption(token, token))
	}
	return options
}

// CreateBoardForm creates a huh form for adding a new board
func CreateBoardForm(v *BoardFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Board Title").
			Placeholder("Enter board title...").
			Validate(requireTitle).
			Value(&v.Title),

		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(PaletteOptions()...).
			Value(&v.Color),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this board?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithKeyMap(FormKeyMap()).WithShowHelp(false)
}

func requireTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyTitle
	}
	return nil
}
