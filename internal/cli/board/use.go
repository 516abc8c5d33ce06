package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// UseCmd returns the board use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <board>",
		Short: "Select the current board",
		Long: `Make a board the current board. Commands run without --board
work on the current board, and the TUI opens on it.

Examples:
  pinboard board use "Launch"
  pinboard board use board-1a2b
`,
		Args: cobra.ExactArgs(1),
		RunE: runUse,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUse(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	s := cliInstance.App.Store
	b, ok := cli.FindBoard(s.Boards(), args[0])
	if !ok || !s.SetCurrentBoard(b.ID) {
		return formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND", fmt.Sprintf("board %q not found", args[0]))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", b)
	}

	fmt.Printf("✓ Now using board '%s' (ID: %s)\n", b.Title, b.ID)
	return nil
}
