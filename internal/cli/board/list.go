package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// boardSummary is the list view of a board
type boardSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Color   string `json:"color"`
	Starred bool   `json:"starred"`
	Current bool   `json:"current"`
	Columns int    `json:"columns"`
	Tickets int    `json:"tickets"`
}

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long: `List all boards in creation order.

Examples:
  pinboard board list
  pinboard board list --starred
  pinboard board list --json
`,
		RunE: runList,
	}

	cmd.Flags().Bool("starred", false, "Only list starred boards")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	starredOnly, _ := cmd.Flags().GetBool("starred")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	s := cliInstance.App.Store
	var boards []models.Board
	if starredOnly {
		boards = s.StarredBoards()
	} else {
		boards = s.Boards()
	}

	var current string
	if id := s.CurrentBoardID(); id != nil {
		current = string(*id)
	}

	if formatter.Quiet {
		for _, b := range boards {
			fmt.Println(b.ID)
		}
		return nil
	}

	summaries := make([]boardSummary, len(boards))
	for i, b := range boards {
		summaries[i] = boardSummary{
			ID:      string(b.ID),
			Title:   b.Title,
			Color:   b.Color,
			Starred: b.Starred,
			Current: string(b.ID) == current,
			Columns: len(b.Columns),
			Tickets: b.TicketCount(),
		}
	}

	if formatter.JSON {
		return formatter.Success("boards", summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No boards found")
		return nil
	}

	fmt.Println("Boards:")
	for i, b := range summaries {
		marker := " "
		if b.Current {
			marker = "*"
		}
		star := ""
		if b.Starred {
			star = " ★"
		}
		fmt.Printf("%s %d. %s%s (ID: %s, %d tickets)\n", marker, i+1, b.Title, star, b.ID, b.Tickets)
	}
	return nil
}
