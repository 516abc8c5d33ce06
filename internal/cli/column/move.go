package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/dnd"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a column",
		Long: `Move a column to a new 1-based position on its board. The
move goes through the same drop handling the board view uses.

Examples:
  pinboard column move --column="Done" --position=1
`,
		RunE: runMove,
	}

	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Int("position", 0, "Target position, 1-based (required)")
	_ = cmd.MarkFlagRequired("position")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	ref, _ := cmd.Flags().GetString("column")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	s := cliInstance.App.Store
	b, err := cli.GetBoard(cmd, s)
	if err != nil {
		return cli.BoardError(formatter, err)
	}
	col, from, ok := cli.FindColumn(b, ref)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", ref))
	}
	if position < 1 || position > len(b.Columns) {
		return formatter.Fail(cli.ExitValidation, "INVALID_POSITION",
			fmt.Sprintf("position %d out of range (1-%d)", position, len(b.Columns)))
	}

	outcome := cliInstance.App.Coordinator(b.ID).OnDragEnd(dnd.DropResult{
		Kind:        dnd.KindColumn,
		DraggableID: string(col.ID),
		Source:      dnd.Location{DroppableID: dnd.BoardDroppable, Index: from},
		Destination: &dnd.Location{DroppableID: dnd.BoardDroppable, Index: position - 1},
	})
	if outcome == dnd.OutcomeFailed || outcome == dnd.OutcomeMissed {
		return formatter.Fail(cli.ExitError, "MOVE_FAILED", dnd.FailureMessage)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("column", col)
	}

	fmt.Printf("✓ Column '%s' moved to position %d (%s)\n", col.Title, position, outcome)
	return nil
}
