package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its columns and tickets",
		Long: `Show a board. Without --board the current board is shown.

Examples:
  pinboard board show
  pinboard board show --board="Launch" --json
`,
		RunE: runShow,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	b, err := cli.GetBoard(cmd, cliInstance.App.Store)
	if err != nil {
		return cli.BoardError(formatter, err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", b)
	}

	star := ""
	if b.Starred {
		star = " ★"
	}
	fmt.Printf("%s%s (ID: %s)\n", b.Title, star, b.ID)
	fmt.Printf("  Color: %s\n", b.Color)
	for _, col := range b.Columns {
		fmt.Printf("\n  %s (%d)\n", col.Title, len(col.Tickets))
		for _, t := range col.Tickets {
			fmt.Printf("    - %s (ID: %s)\n", t.Title, t.ID)
		}
	}
	return nil
}
