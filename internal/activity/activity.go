// Package activity derives a recent-activity feed from board timestamps.
// Nothing is recorded separately: the feed is recomputed from the boards.
package activity

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// Kind names what happened
type Kind string

const (
	KindBoardCreated  Kind = "board-created"
	KindBoardUpdated  Kind = "board-updated"
	KindTicketUpdated Kind = "ticket-updated"
)

// Entry is one line of the feed
type Entry struct {
	ID         string        `json:"id"`
	Kind       Kind          `json:"type"`
	Message    string        `json:"message"`
	Timestamp  time.Time     `json:"timestamp"`
	BoardID    types.BoardID `json:"boardId"`
	BoardTitle string        `json:"boardTitle"`
}

// Feed lists board creations, board updates and ticket updates, newest
// first. Entries with equal timestamps keep board order.
func Feed(boards []models.Board) []Entry {
	entries := []Entry{}

	for _, b := range boards {
		entries = append(entries, Entry{
			ID:         fmt.Sprintf("board-%s-created", b.ID),
			Kind:       KindBoardCreated,
			Message:    fmt.Sprintf("Board %q was created", b.Title),
			Timestamp:  b.CreatedAt,
			BoardID:    b.ID,
			BoardTitle: b.Title,
		})

		if !b.UpdatedAt.Equal(b.CreatedAt) {
			entries = append(entries, Entry{
				ID:         fmt.Sprintf("board-%s-updated", b.ID),
				Kind:       KindBoardUpdated,
				Message:    fmt.Sprintf("Board %q was updated", b.Title),
				Timestamp:  b.UpdatedAt,
				BoardID:    b.ID,
				BoardTitle: b.Title,
			})
		}

		for _, col := range b.Columns {
			for _, t := range col.Tickets {
				if t.UpdatedAt.Equal(t.CreatedAt) {
					continue
				}
				entries = append(entries, Entry{
					ID:         fmt.Sprintf("ticket-%s-updated", t.ID),
					Kind:       KindTicketUpdated,
					Message:    fmt.Sprintf("Card %q was updated in %q", t.Title, col.Title),
					Timestamp:  t.UpdatedAt,
					BoardID:    b.ID,
					BoardTitle: b.Title,
				})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

// Describe renders ts relative to now: "just now" under a minute,
// "5 minutes ago" style up to a week, then the date
func Describe(ts, now time.Time) string {
	diff := now.Sub(ts)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < 7*24*time.Hour:
		return humanize.RelTime(ts, now, "ago", "from now")
	}
	return ts.Format("2006-01-02")
}
