package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

type ticketSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	ColumnID string   `json:"columnId"`
	Column   string   `json:"column"`
	Labels   []string `json:"labels"`
	Done     int      `json:"checklistDone"`
	Total    int      `json:"checklistTotal"`
}

// ListCmd returns the ticket list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets",
		Long: `List tickets on a board, column by column.

Examples:
  pinboard ticket list
  pinboard ticket list --column="Done" --json
`,
		RunE: runList,
	}

	cmd.Flags().String("column", "", "Only list tickets in this column")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	columnRef, _ := cmd.Flags().GetString("column")

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	b, err := cli.GetBoard(cmd, cliInstance.App.Store)
	if err != nil {
		return cli.BoardError(formatter, err)
	}

	columns := b.Columns
	if columnRef != "" {
		col, _, ok := cli.FindColumn(b, columnRef)
		if !ok {
			return formatter.Fail(cli.ExitNotFound, "COLUMN_NOT_FOUND", fmt.Sprintf("column %q not found", columnRef))
		}
		columns = []models.Column{col}
	}

	summaries := []ticketSummary{}
	for _, col := range columns {
		for _, t := range col.Tickets {
			done, total := t.Progress()
			labels := t.Labels
			if labels == nil {
				labels = []string{}
			}
			summaries = append(summaries, ticketSummary{
				ID:       string(t.ID),
				Title:    t.Title,
				ColumnID: string(col.ID),
				Column:   col.Title,
				Labels:   labels,
				Done:     done,
				Total:    total,
			})
		}
	}

	if formatter.Quiet {
		for _, t := range summaries {
			fmt.Println(t.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success("tickets", summaries)
	}

	if len(summaries) == 0 {
		fmt.Printf("No tickets found on board '%s'\n", b.Title)
		return nil
	}

	current := ""
	for _, t := range summaries {
		if t.Column != current {
			current = t.Column
			fmt.Printf("%s:\n", current)
		}
		progress := ""
		if t.Total > 0 {
			progress = fmt.Sprintf(" [%d/%d]", t.Done, t.Total)
		}
		fmt.Printf("  - %s%s (ID: %s)\n", t.Title, progress, t.ID)
	}
	return nil
}
