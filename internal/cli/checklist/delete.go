package checklist

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// DeleteCmd returns the checklist delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a checklist from a ticket",
		Long: `Remove a checklist and all of its items.

Examples:
  pinboard checklist delete --ticket="Fix login" --checklist="Steps"
`,
		RunE: runDelete,
	}

	addTargetFlags(cmd, true)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	tg, err := resolve(cmd, cliInstance, formatter, true)
	if err != nil {
		return err
	}
	if !cliInstance.App.Store.DeleteChecklist(tg.Board.ID, tg.Column.ID, tg.Ticket.ID, tg.Checklist.ID) {
		return formatter.Fail(cli.ExitNotFound, "CHECKLIST_NOT_FOUND", fmt.Sprintf("checklist %s not found", tg.Checklist.ID))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("checklist", tg.Checklist)
	}

	fmt.Printf("✓ Checklist '%s' deleted (ID: %s)\n", tg.Checklist.Title, tg.Checklist.ID)
	return nil
}
