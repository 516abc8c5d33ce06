package ticket

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/markdown"
)

// ShowCmd returns the ticket show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show ticket details",
		Long: `Show a ticket with its description, labels, due date and checklists.

Examples:
  pinboard ticket show --ticket="Fix login"
  pinboard ticket show --ticket=tick-9f2c --json
`,
		RunE: runShow,
	}

	addTicketFlag(cmd)
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

	loc, err := lookup(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}
	t := loc.Ticket

	if formatter.Quiet {
		return formatter.Success("ticket", t)
	}
	if formatter.JSON {
		return formatter.Success("ticket", map[string]any{
			"board":    map[string]string{"id": string(loc.Board.ID), "title": loc.Board.Title},
			"column":   map[string]string{"id": string(loc.Column.ID), "title": loc.Column.Title},
			"position": loc.Index + 1,
			"details":  t,
		})
	}

	fmt.Printf("%s (ID: %s)\n", t.Title, t.ID)
	fmt.Printf("  Board: %s\n", loc.Board.Title)
	fmt.Printf("  Column: %s (position %d)\n", loc.Column.Title, loc.Index+1)
	if len(t.Labels) > 0 {
		fmt.Printf("  Labels: %s\n", strings.Join(t.Labels, ", "))
	}
	if t.DueDate != nil {
		fmt.Printf("  Due: %s\n", t.DueDate.Format(cli.DateLayout))
	}
	fmt.Printf("  Created: %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Updated: %s\n", t.UpdatedAt.Format("2006-01-02 15:04"))

	if desc := markdown.Render(t.Description, markdown.DefaultWidth); desc != "" {
		fmt.Printf("\n%s\n", desc)
	}

	for _, cl := range t.Checklists {
		fmt.Printf("\n  %s (ID: %s)\n", cl.Title, cl.ID)
		for _, item := range cl.Items {
			box := "[ ]"
			if item.Completed {
				box = "[x]"
			}
			fmt.Printf("    %s %s (ID: %s)\n", box, item.Text, item.ID)
		}
	}
	return nil
}
