package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/store"
)

// BoardEnvVar selects a board for commands run without --board
const BoardEnvVar = "PINBOARD_BOARD"

// DateLayout is the accepted --due format
const DateLayout = "2006-01-02"

var (
	// ErrNoBoard is returned when neither --board, PINBOARD_BOARD nor the
	// current selection names a board
	ErrNoBoard = errors.New("no board selected")

	// ErrEmptyTitle is returned for blank titles and texts
	ErrEmptyTitle = errors.New("title cannot be empty")
)

// AddBoardFlag registers the --board flag shared by column, ticket and
// checklist commands
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID or title (defaults to $"+BoardEnvVar+", then the current board)")
}

// GetBoard resolves the board a command works on. --board wins over
// PINBOARD_BOARD, which wins over the store's current board.
func GetBoard(cmd *cobra.Command, s *store.Store) (models.Board, error) {
	ref, _ := cmd.Flags().GetString("board")
	if ref == "" {
		ref = os.Getenv(BoardEnvVar)
	}
	if ref == "" {
		b, ok := s.CurrentBoard()
		if !ok {
			return models.Board{}, ErrNoBoard
		}
		return b, nil
	}

	b, ok := FindBoard(s.Boards(), ref)
	if !ok {
		return models.Board{}, fmt.Errorf("board %q not found", ref)
	}
	return b, nil
}

// FindBoard matches ref against board ids first, then titles ignoring case
func FindBoard(boards []models.Board, ref string) (models.Board, bool) {
	for _, b := range boards {
		if string(b.ID) == ref {
			return b, true
		}
	}
	for _, b := range boards {
		if strings.EqualFold(b.Title, ref) {
			return b, true
		}
	}
	return models.Board{}, false
}

// FindColumn matches ref against column ids, then titles
func FindColumn(b models.Board, ref string) (models.Column, int, bool) {
	for i, c := range b.Columns {
		if string(c.ID) == ref {
			return c, i, true
		}
	}
	for i, c := range b.Columns {
		if strings.EqualFold(c.Title, ref) {
			return c, i, true
		}
	}
	return models.Column{}, -1, false
}

// TicketRef places a ticket within its board
type TicketRef struct {
	Column models.Column
	Ticket models.Ticket
	Index  int
}

// FindTicket looks for ref across every column of b, ids before titles
func FindTicket(b models.Board, ref string) (TicketRef, bool) {
	for _, c := range b.Columns {
		for i, t := range c.Tickets {
			if string(t.ID) == ref {
				return TicketRef{Column: c, Ticket: t, Index: i}, true
			}
		}
	}
	for _, c := range b.Columns {
		for i, t := range c.Tickets {
			if strings.EqualFold(t.Title, ref) {
				return TicketRef{Column: c, Ticket: t, Index: i}, true
			}
		}
	}
	return TicketRef{}, false
}

// FindChecklist matches ref against checklist ids, then titles
func FindChecklist(t models.Ticket, ref string) (models.Checklist, bool) {
	for _, cl := range t.Checklists {
		if string(cl.ID) == ref {
			return cl, true
		}
	}
	for _, cl := range t.Checklists {
		if strings.EqualFold(cl.Title, ref) {
			return cl, true
		}
	}
	return models.Checklist{}, false
}

// FindItem matches ref against item ids, then item texts
func FindItem(cl models.Checklist, ref string) (models.ChecklistItem, bool) {
	for _, item := range cl.Items {
		if string(item.ID) == ref {
			return item, true
		}
	}
	for _, item := range cl.Items {
		if strings.EqualFold(item.Text, ref) {
			return item, true
		}
	}
	return models.ChecklistItem{}, false
}

// ValidateTitle trims s and rejects it when nothing is left
func ValidateTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTitle
	}
	return s, nil
}

// ValidateColor accepts an empty color (use the default) or a palette token
func ValidateColor(color string) error {
	if color == "" || models.IsPaletteColor(color) {
		return nil
	}
	return fmt.Errorf("color must be one of: %s, got: %s", strings.Join(models.Palette, ", "), color)
}

// ParseDueDate parses a YYYY-MM-DD date as UTC midnight
func ParseDueDate(s string) (time.Time, error) {
	due, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (expected %s)", s, DateLayout)
	}
	return due, nil
}

// Position converts a 1-based CLI position into an index in [0, n].
// Zero means the end.
func Position(pos, n int) (int, error) {
	if pos == 0 {
		return n, nil
	}
	if pos < 1 || pos > n+1 {
		return 0, fmt.Errorf("position %d out of range (1-%d)", pos, n+1)
	}
	return pos - 1, nil
}

// BoardError reports a GetBoard failure with the matching exit code
func BoardError(formatter *OutputFormatter, err error) error {
	if errors.Is(err, ErrNoBoard) {
		return formatter.FailWithSuggestion(ExitUsage, "NO_BOARD", err.Error(),
			"Pass --board or select one with: pinboard board use <board>")
	}
	return formatter.Fail(ExitNotFound, "BOARD_NOT_FOUND", err.Error())
}
