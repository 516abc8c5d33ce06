package workspace

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tickets across all boards",
		Long: `Find tickets whose title or description contains the query,
ignoring case.

Examples:
  pinboard search login
  pinboard search "release notes" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	query := strings.TrimSpace(strings.Join(args, " "))

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	results := cliInstance.App.Store.SearchTickets(query)

	if formatter.Quiet {
		for _, r := range results {
			fmt.Println(r.Ticket.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success("results", results)
	}

	if len(results) == 0 {
		fmt.Printf("No tickets match '%s'\n", query)
		return nil
	}

	fmt.Printf("%d tickets match '%s':\n", len(results), query)
	for _, r := range results {
		fmt.Printf("  %s › %s › %s (ID: %s)\n", r.BoardTitle, r.ColumnTitle, r.Ticket.Title, r.Ticket.ID)
	}
	return nil
}
