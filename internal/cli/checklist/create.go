package checklist

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// CreateCmd returns the checklist create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Add a checklist to a ticket",
		Long: `Add an empty checklist to a ticket.

Examples:
  pinboard checklist create --ticket="Fix login" --title="Steps"
  CHECKLIST_ID=$(pinboard checklist create --ticket="Fix login" --title="QA" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Checklist title (required)")
	_ = cmd.MarkFlagRequired("title")
	addTargetFlags(cmd, false)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	raw, _ := cmd.Flags().GetString("title")
	title, err := cli.ValidateTitle(raw)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err.Error())
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	tg, err := resolve(cmd, cliInstance, formatter, false)
	if err != nil {
		return err
	}

	s := cliInstance.App.Store
	id, ok := s.AddChecklist(tg.Board.ID, tg.Column.ID, tg.Ticket.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", fmt.Sprintf("ticket %s not found", tg.Ticket.ID))
	}
	t, _ := s.Ticket(tg.Board.ID, tg.Column.ID, tg.Ticket.ID)
	cl, _ := cli.FindChecklist(t, string(id))

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("checklist", cl)
	}

	fmt.Printf("✓ Checklist '%s' added to '%s' (ID: %s)\n", cl.Title, t.Title, cl.ID)
	return nil
}
