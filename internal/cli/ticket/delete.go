package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// DeleteCmd returns the ticket delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a ticket",
		Long: `Delete a ticket and its checklists.

Examples:
  pinboard ticket delete --ticket="Fix login"
`,
		RunE: runDelete,
	}

	addTicketFlag(cmd)
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	loc, err := lookup(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}
	if !cliInstance.App.Store.DeleteTicket(loc.Board.ID, loc.Column.ID, loc.Ticket.ID) {
		return formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", fmt.Sprintf("ticket %s not found", loc.Ticket.ID))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("ticket", loc.Ticket)
	}

	fmt.Printf("✓ Ticket '%s' deleted (ID: %s)\n", loc.Ticket.Title, loc.Ticket.ID)
	return nil
}
