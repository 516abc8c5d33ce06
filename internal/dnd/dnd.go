// Package dnd turns the outcome of a drag gesture into a single board
// store call.
package dnd

import (
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/pinboard/internal/types"
)

// Kind discriminates column drags from card drags
type Kind string

const (
	KindColumn Kind = "COLUMN"
	KindCard   Kind = "CARD"
)

// BoardDroppable is the droppable id of the column strip itself
const BoardDroppable = "board"

// FailureMessage is what the user sees when a move blows up
const FailureMessage = "Failed to move item"

// Location is a position inside a droppable container. For cards the
// droppable id is the column id.
type Location struct {
	DroppableID string
	Index       int
}

// DropResult describes a finished drag. A nil Destination means the item
// was dropped outside any target or the drag was cancelled.
type DropResult struct {
	Kind        Kind
	DraggableID string
	Source      Location
	Destination *Location
}

// Outcome reports what OnDragEnd did
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeUnchanged
	OutcomeMoved
	OutcomeMissed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeMoved:
		return "moved"
	case OutcomeMissed:
		return "missed"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Mover is the subset of the board store the coordinator drives
type Mover interface {
	MoveColumn(boardID types.BoardID, from, to int) bool
	MoveTicket(boardID types.BoardID, srcColumn, dstColumn types.ColumnID, srcIndex, dstIndex int) bool
}

// Notifier shows a transient error to the user
type Notifier interface {
	Error(message string) string
}

// Coordinator applies drops to one board
type Coordinator struct {
	boardID  types.BoardID
	mover    Mover
	notifier Notifier
	logger   *slog.Logger
	metrics  *Metrics
}

// NewCoordinator binds a coordinator to a board. notifier may be nil.
func NewCoordinator(boardID types.BoardID, mover Mover, notifier Notifier, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{boardID: boardID, mover: mover, notifier: notifier, logger: logger}
}

// WithMetrics makes the coordinator count every outcome in m
func (c *Coordinator) WithMetrics(m *Metrics) *Coordinator {
	c.metrics = m
	return c
}

// BoardID returns the board the coordinator is bound to
func (c *Coordinator) BoardID() types.BoardID {
	return c.boardID
}

// OnDragEnd makes at most one store call for the drop
func (c *Coordinator) OnDragEnd(result DropResult) (outcome Outcome) {
	if c.metrics != nil {
		defer func() { c.metrics.Record(outcome) }()
	}

	dst := result.Destination
	if dst == nil {
		return OutcomeCancelled
	}
	src := result.Source
	if dst.DroppableID == src.DroppableID && dst.Index == src.Index {
		return OutcomeUnchanged
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("move panicked",
				"board_id", c.boardID,
				"kind", result.Kind,
				"draggable_id", result.DraggableID,
				"panic", r)
			if c.notifier != nil {
				c.notifier.Error(FailureMessage)
			}
			outcome = OutcomeFailed
		}
	}()

	var ok bool
	if result.Kind == KindColumn {
		ok = c.mover.MoveColumn(c.boardID, src.Index, dst.Index)
	} else {
		ok = c.mover.MoveTicket(c.boardID,
			types.ColumnID(src.DroppableID), types.ColumnID(dst.DroppableID),
			src.Index, dst.Index)
	}

	if !ok {
		c.logger.Debug("drop target vanished",
			"board_id", c.boardID,
			"kind", result.Kind,
			"draggable_id", result.DraggableID)
		return OutcomeMissed
	}
	return OutcomeMoved
}
