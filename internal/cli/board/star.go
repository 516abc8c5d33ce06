package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// StarCmd returns the board star subcommand
func StarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "star",
		Short: "Toggle a board's star",
		Long: `Star an unstarred board or unstar a starred one.

Examples:
  pinboard board star --board="Launch"
`,
		RunE: runStar,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStar(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

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
	s.ToggleStarBoard(b.ID)
	updated, _ := s.Board(b.ID)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", updated)
	}

	if updated.Starred {
		fmt.Printf("★ Board '%s' starred\n", updated.Title)
	} else {
		fmt.Printf("☆ Board '%s' unstarred\n", updated.Title)
	}
	return nil
}
