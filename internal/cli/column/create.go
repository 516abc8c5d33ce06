package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a new column",
		Long: `Append a new empty column to a board.

Examples:
  # Create column on the current board
  pinboard column create --title="Review"

  # JSON output for agents
  pinboard column create --title="Review" --board="Launch" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(pinboard column create --title="Review" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	_ = cmd.MarkFlagRequired("title")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

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

	s := cliInstance.App.Store
	b, err := cli.GetBoard(cmd, s)
	if err != nil {
		return cli.BoardError(formatter, err)
	}

	id, ok := s.AddColumn(b.ID, title)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND", fmt.Sprintf("board %s not found", b.ID))
	}
	updated, _ := s.Board(b.ID)
	col, _, _ := cli.FindColumn(updated, string(id))

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("column", col)
	}

	fmt.Printf("✓ Column '%s' created successfully (ID: %s)\n", col.Title, col.ID)
	fmt.Printf("  Board: %s\n", b.Title)
	return nil
}
