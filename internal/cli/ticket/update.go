package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// UpdateCmd returns the ticket update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a ticket",
		Long: `Update a ticket's title, description or due date.

Examples:
  pinboard ticket update --ticket="Fix login" --title="Fix SSO login"
  pinboard ticket update --ticket="Fix login" --due=2026-05-01
  pinboard ticket update --ticket="Fix login" --clear-due
`,
		RunE: runUpdate,
	}

	addTicketFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New markdown description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var u models.TicketUpdate
	if cmd.Flags().Changed("title") {
		raw, _ := cmd.Flags().GetString("title")
		title, err := cli.ValidateTitle(raw)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err.Error())
		}
		u.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		u.Description = &description
	}
	if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		due, err := cli.ParseDueDate(raw)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DATE", err.Error())
		}
		u.DueDate = &due
	}
	u.ClearDueDate, _ = cmd.Flags().GetBool("clear-due")

	if u == (models.TicketUpdate{}) {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES",
			"no fields to update", "Pass --title, --description, --due or --clear-due")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	loc, err := lookup(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	s := cliInstance.App.Store
	if !s.UpdateTicket(loc.Board.ID, loc.Column.ID, loc.Ticket.ID, u) {
		return formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", fmt.Sprintf("ticket %s not found", loc.Ticket.ID))
	}
	t, _ := s.Ticket(loc.Board.ID, loc.Column.ID, loc.Ticket.ID)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("ticket", t)
	}

	fmt.Printf("✓ Ticket '%s' updated successfully (ID: %s)\n", t.Title, t.ID)
	return nil
}
