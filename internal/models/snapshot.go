package models

import "github.com/thenoetrevino/pinboard/internal/types"

// Snapshot is the full persisted state: every board plus the selection.
// It carries no schema version; structural changes need a reset.
type Snapshot struct {
	Boards         []Board        `json:"boards"`
	CurrentBoardID *types.BoardID `json:"currentBoardId"`
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{}
	if s.Boards != nil {
		out.Boards = make([]Board, len(s.Boards))
		for i, b := range s.Boards {
			out.Boards[i] = b.Clone()
		}
	}
	if s.CurrentBoardID != nil {
		id := *s.CurrentBoardID
		out.CurrentBoardID = &id
	}
	return out
}
