package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete a column together with its tickets. A column that still
holds tickets needs --force.

Examples:
  pinboard column delete --column="Review"
  pinboard column delete --column="Review" --force
`,
		RunE: runDelete,
	}

	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Bool("force", false, "Delete even when the column holds tickets")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	ref, _ := cmd.Flags().GetString("column")
	force, _ := cmd.Flags().GetBool("force")

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
	col, _, ok := cli.FindColumn(b, ref)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", ref))
	}
	if len(col.Tickets) > 0 && !force {
		return formatter.FailWithSuggestion(cli.ExitUsage, "COLUMN_NOT_EMPTY",
			fmt.Sprintf("column '%s' holds %d tickets", col.Title, len(col.Tickets)),
			"Move the tickets first or re-run with --force")
	}
	if !s.DeleteColumn(b.ID, col.ID) {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", ref))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("column", col)
	}

	fmt.Printf("✓ Column '%s' deleted (ID: %s)\n", col.Title, col.ID)
	return nil
}
