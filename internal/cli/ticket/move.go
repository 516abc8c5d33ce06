package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/dnd"
)

// MoveCmd returns the ticket move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a ticket within or across columns",
		Long: `Move a ticket to a 1-based position in a column. Without
--column the ticket stays in its column; without --position it goes to
the end. The move goes through the same drop handling the board view uses.

Examples:
  pinboard ticket move --ticket="Fix login" --column="Done"
  pinboard ticket move --ticket="Fix login" --position=1
`,
		RunE: runMove,
	}

	addTicketFlag(cmd)
	cmd.Flags().String("column", "", "Destination column ID or title")
	cmd.Flags().Int("position", 0, "Destination position, 1-based (0 = end)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	columnRef, _ := cmd.Flags().GetString("column")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	loc, err := lookup(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	dst := loc.Column
	if columnRef != "" {
		var ok bool
		dst, _, ok = cli.FindColumn(loc.Board, columnRef)
		if !ok {
			return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", columnRef))
		}
	}

	// within a column the ticket's own slot is the last valid index
	slots := len(dst.Tickets)
	if dst.ID == loc.Column.ID {
		slots--
	}
	index, err := cli.Position(position, slots)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_POSITION", err.Error())
	}

	outcome := cliInstance.App.Coordinator(loc.Board.ID).OnDragEnd(dnd.DropResult{
		Kind:        dnd.KindCard,
		DraggableID: string(loc.Ticket.ID),
		Source:      dnd.Location{DroppableID: string(loc.Column.ID), Index: loc.Index},
		Destination: &dnd.Location{DroppableID: string(dst.ID), Index: index},
	})
	if outcome == dnd.OutcomeFailed || outcome == dnd.OutcomeMissed {
		return formatter.Fail(cli.ExitError, "MOVE_FAILED", dnd.FailureMessage)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("ticket", loc.Ticket)
	}

	fmt.Printf("✓ Ticket '%s' moved to '%s' position %d (%s)\n", loc.Ticket.Title, dst.Title, index+1, outcome)
	return nil
}
