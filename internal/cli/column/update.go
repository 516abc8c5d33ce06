package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a column",
		Long: `Rename a column. --column takes a column id or title.

Examples:
  pinboard column update --column="To Do" --title="Backlog"
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().String("title", "", "New title (required)")
	_ = cmd.MarkFlagRequired("title")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	ref, _ := cmd.Flags().GetString("column")
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

	s := cliInstance.App.Store
	b, err := cli.GetBoard(cmd, s)
	if err != nil {
		return cli.BoardError(formatter, err)
	}
	col, _, ok := cli.FindColumn(b, ref)
	if !ok || !s.UpdateColumn(b.ID, col.ID, title) {
		return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", ref))
	}
	col.Title = title

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("column", col)
	}

	fmt.Printf("✓ Column renamed to '%s' (ID: %s)\n", col.Title, col.ID)
	return nil
}
