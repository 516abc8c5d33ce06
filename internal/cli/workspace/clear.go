package workspace

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// ClearCmd returns the clear command
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all boards",
		Long: `Remove every board and the persisted snapshot. Requires --yes.
The next launch starts from the sample boards when seeding is enabled.

Examples:
  pinboard clear --yes
`,
		RunE: runClear,
	}

	cmd.Flags().Bool("yes", false, "Confirm deleting all data")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		return formatter.FailWithSuggestion(cli.ExitUsage, "CONFIRMATION_REQUIRED",
			"clear removes every board", "Re-run with --yes")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	s := cliInstance.App.Store
	removed := len(s.Boards())
	if err := s.Clear(cmd.Context()); err != nil {
		return formatter.Fail(cli.ExitError, "CLEAR_FAILED", err.Error())
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success("removed", removed)
	}

	fmt.Printf("✓ Removed %d boards\n", removed)
	return nil
}
