package column

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

type columnSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tickets int    `json:"tickets"`
}

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns of a board",
		Long: `List a board's columns in display order.

Examples:
  pinboard column list
  pinboard column list --board="Launch" --json
`,
		RunE: runList,
	}

	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	if formatter.Quiet {
		for _, col := range b.Columns {
			fmt.Println(col.ID)
		}
		return nil
	}

	if formatter.JSON {
		columns := make([]columnSummary, len(b.Columns))
		for i, col := range b.Columns {
			columns[i] = columnSummary{ID: string(col.ID), Title: col.Title, Tickets: len(col.Tickets)}
		}
		return formatter.Success("columns", columns)
	}

	if len(b.Columns) == 0 {
		fmt.Printf("No columns found on board '%s'\n", b.Title)
		return nil
	}

	fmt.Printf("Columns on board '%s':\n", b.Title)
	for i, col := range b.Columns {
		fmt.Printf("  %d. %s (ID: %s, %d tickets)\n", i+1, col.Title, col.ID, len(col.Tickets))
	}
	return nil
}
