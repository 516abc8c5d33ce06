package store

import (
	"github.com/thenoetrevino/pinboard/internal/models"
	"github.com/thenoetrevino/pinboard/internal/types"
)

type sampleBoard struct {
	title   string
	color   string
	starred bool
}

var sampleBoards = []sampleBoard{
	{"Product Launch", "from-pink-500 to-rose-500", false},
	{"Engineering", "from-blue-500 to-indigo-500", true},
	{"Marketing Campaign", "from-amber-400 to-orange-500", false},
	{"Design Systems", "from-emerald-400 to-cyan-500", false},
}

type sampleTicket struct {
	title  string
	labels []string
}

// sampleColumns holds the tickets for To Do, In Progress and Done
var sampleColumns = [][]sampleTicket{
	{
		{"Research Competitors", []string{"Strategy"}},
		{"Design System Draft", []string{"Design", "UI"}},
	},
	{
		{"Setup Next.js Repo", []string{"Dev"}},
	},
	{
		{"Project Kickoff", []string{"Meeting"}},
	},
}

// seedSamples replaces the state with the sample boards and selects the
// first one. Caller holds the lock.
func (s *Store) seedSamples() {
	now := s.now()
	s.boards = make([]models.Board, 0, len(sampleBoards))

	for _, sb := range sampleBoards {
		board := models.Board{
			ID:        types.BoardID(s.newID(types.BoardPrefix)),
			Title:     sb.title,
			Color:     sb.color,
			Starred:   sb.starred,
			CreatedAt: now,
			UpdatedAt: now,
		}
		for i, title := range models.DefaultColumnTitles {
			col := models.Column{
				ID:      types.ColumnID(s.newID(types.ColumnPrefix)),
				Title:   title,
				Tickets: []models.Ticket{},
			}
			for _, st := range sampleColumns[i] {
				col.Tickets = append(col.Tickets, models.Ticket{
					ID:        types.TicketID(s.newID(types.TicketPrefix)),
					Title:     st.title,
					Labels:    append([]string{}, st.labels...),
					CreatedAt: now,
					UpdatedAt: now,
				})
			}
			board.Columns = append(board.Columns, col)
		}
		s.boards = append(s.boards, board)
	}
	s.current = s.firstBoardID()
}
