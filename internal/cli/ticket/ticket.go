package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// TicketCmd returns the ticket parent command
func TicketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Manage tickets",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(LabelCmd())

	return cmd
}

// addTicketFlag registers the required --ticket flag
func addTicketFlag(cmd *cobra.Command) {
	cmd.Flags().String("ticket", "", "Ticket ID or title (required)")
	_ = cmd.MarkFlagRequired("ticket")
}

// located is a ticket with the ids needed to address it in the store
type located struct {
	Board  models.Board
	Column models.Column
	Ticket models.Ticket
	Index  int
}

// lookup resolves --board and --ticket, reporting failures through formatter
func lookup(cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) (located, error) {
	b, err := cli.GetBoard(cmd, cliInstance.App.Store)
	if err != nil {
		return located{}, cli.BoardError(formatter, err)
	}
	ref, _ := cmd.Flags().GetString("ticket")
	found, ok := cli.FindTicket(b, ref)
	if !ok {
		return located{}, formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND",
			fmt.Sprintf("ticket %q not found on board '%s'", ref, b.Title))
	}
	return located{Board: b, Column: found.Column, Ticket: found.Ticket, Index: found.Index}, nil
}
