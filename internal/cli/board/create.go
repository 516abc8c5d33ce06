package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board with To Do, In Progress and Done columns.
The new board becomes the current board.

Examples:
  # Create a board (human-readable output)
  pinboard board create --title="Launch"

  # Pick a palette color
  pinboard board create --title="Launch" --color="from-pink-500 to-rose-500"

  # Quiet mode for bash capture
  BOARD_ID=$(pinboard board create --title="Launch" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Board title (required)")
	_ = cmd.MarkFlagRequired("title")
	cmd.Flags().String("color", "", "Palette color token")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	rawTitle, _ := cmd.Flags().GetString("title")
	color, _ := cmd.Flags().GetString("color")

	title, err := cli.ValidateTitle(rawTitle)
	if err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err.Error())
	}
	if err := cli.ValidateColor(color); err != nil {
		return formatter.Fail(cli.ExitValidation, "INVALID_COLOR", err.Error())
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	s := cliInstance.App.Store
	id := s.CreateBoard(title, color)
	b, _ := s.Board(id)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", b)
	}

	fmt.Printf("✓ Board '%s' created successfully (ID: %s)\n", b.Title, b.ID)
	fmt.Printf("  Columns: %d\n", len(b.Columns))
	return nil
}
