package store

import (
	"strings"

	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

// SearchResult is one ticket matched by SearchTickets, with enough context
// to find it again
type SearchResult struct {
	BoardID     types.BoardID  `json:"boardId"`
	BoardTitle  string         `json:"boardTitle"`
	ColumnID    types.ColumnID `json:"columnId"`
	ColumnTitle string         `json:"columnTitle"`
	Ticket      models.Ticket  `json:"ticket"`
}

// SearchTickets finds tickets across all boards whose title or description
// contains query, ignoring case. An empty query matches nothing.
func (s *Store) SearchTickets(query string) []SearchResult {
	results := []SearchResult{}
	if query == "" {
		return results
	}
	needle := strings.ToLower(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.boards {
		for _, col := range b.Columns {
			for _, t := range col.Tickets {
				if !strings.Contains(strings.ToLower(t.Title), needle) &&
					!strings.Contains(strings.ToLower(t.Description), needle) {
					continue
				}
				results = append(results, SearchResult{
					BoardID:     b.ID,
					BoardTitle:  b.Title,
					ColumnID:    col.ID,
					ColumnTitle: col.Title,
					Ticket:      t.Clone(),
				})
			}
		}
	}
	return results
}
