package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board",
		Long: `Delete a board and everything on it. Requires --force.

Examples:
  pinboard board delete --board="Launch" --force
`,
		RunE: runDelete,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return formatter.FailWithSuggestion(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			"deleting a board removes all of its columns and tickets", "Re-run with --force")
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
	if !s.DeleteBoard(b.ID) {
		return formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND", fmt.Sprintf("board %s not found", b.ID))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", b)
	}

	fmt.Printf("✓ Board '%s' deleted (ID: %s)\n", b.Title, b.ID)
	return nil
}
