package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/activity"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent board and ticket activity",
		Long: `Show what changed recently, newest first.

Examples:
  pinboard activity
  pinboard activity --limit=5 --json
`,
		RunE: runActivity,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of entries (0 = all)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runActivity(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return formatter.Fail(cli.ExitValidation, "INVALID_LIMIT", "limit cannot be negative")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	entries := activity.Feed(cliInstance.App.Store.Boards())
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if formatter.Quiet {
		for _, e := range entries {
			fmt.Println(e.ID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success("activity", entries)
	}

	if len(entries) == 0 {
		fmt.Println("No activity yet")
		return nil
	}

	now := cliInstance.App.Clock.Now()
	for _, e := range entries {
		fmt.Printf("  %-12s %s\n", activity.Describe(e.Timestamp, now), e.Message)
	}
	return nil
}
