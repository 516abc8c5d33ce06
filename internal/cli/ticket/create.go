package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// CreateCmd returns the ticket create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a new ticket",
		Long: `Append a ticket to a column. Without --column the ticket goes
into the board's first column.

Examples:
  # Minimal ticket on the current board
  pinboard ticket create --title="Write release notes"

  # Target a column and set details
  pinboard ticket create --title="Fix login" --column="In Progress" \
    --description="Fails on **Safari**" --due=2026-04-01 --label=bug

  # Quiet mode for bash capture
  TICKET_ID=$(pinboard ticket create --title="Ship it" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Ticket title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("column", "", "Column ID or title (defaults to the first column)")
	cmd.Flags().String("description", "", "Markdown description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringSlice("label", nil, "Label to attach (repeatable)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	raw, _ := cmd.Flags().GetString("title")
	columnRef, _ := cmd.Flags().GetString("column")
	description, _ := cmd.Flags().GetString("description")
	dueRaw, _ := cmd.Flags().GetString("due")
	labels, _ := cmd.Flags().GetStringSlice("label")

	title, err := cli.ValidateTitle(raw)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err.Error())
	}

	var u models.TicketUpdate
	if description != "" {
		u.Description = &description
	}
	if dueRaw != "" {
		due, err := cli.ParseDueDate(dueRaw)
		if err != nil {
			return formatter.Fail(cli.ExitDataErr, "INVALID_DATE", err.Error())
		}
		u.DueDate = &due
	}
	if len(labels) > 0 {
		u.Labels = &labels
	}

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

	var col models.Column
	if columnRef == "" {
		if len(b.Columns) == 0 {
			return formatter.FailWithSuggestion(cli.ExitUsage, "NO_COLUMNS",
				fmt.Sprintf("board '%s' has no columns", b.Title),
				"Create one with: pinboard column create --title=<title>")
		}
		col = b.Columns[0]
	} else {
		var ok bool
		col, _, ok = cli.FindColumn(b, columnRef)
		if !ok {
			return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", columnRef))
		}
	}

	id, ok := s.AddTicket(b.ID, col.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %s not found", col.ID))
	}
	if u != (models.TicketUpdate{}) {
		s.UpdateTicket(b.ID, col.ID, id, u)
	}
	t, _ := s.Ticket(b.ID, col.ID, id)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("ticket", t)
	}

	fmt.Printf("✓ Ticket '%s' created successfully (ID: %s)\n", t.Title, t.ID)
	fmt.Printf("  Board: %s\n", b.Title)
	fmt.Printf("  Column: %s\n", col.Title)
	return nil
}
