package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename or recolor a board",
		Long: `Update a board's title and/or color. At least one of --title
and --color is required.

Examples:
  pinboard board update --board="Launch" --title="Launch v2"
  pinboard board update --color="from-blue-500 to-indigo-500"
`,
		RunE: runUpdate,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("color", "", "New palette color token")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	var u models.BoardUpdate
	if cmd.Flags().Changed("title") {
		raw, _ := cmd.Flags().GetString("title")
		title, err := cli.ValidateTitle(raw)
		if err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_TITLE", err.Error())
		}
		u.Title = &title
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		if color == "" {
			color = models.DefaultColor
		}
		if err := cli.ValidateColor(color); err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_COLOR", err.Error())
		}
		u.Color = &color
	}
	if u.Title == nil && u.Color == nil {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES",
			"no fields to update", "Pass --title and/or --color")
	}

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

	if !s.UpdateBoard(b.ID, u) {
		return formatter.Fail(cli.ExitNotFound, "BOARD_NOT_FOUND", fmt.Sprintf("board %s not found", b.ID))
	}
	updated, _ := s.Board(b.ID)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("board", updated)
	}

	fmt.Printf("✓ Board '%s' updated successfully (ID: %s)\n", updated.Title, updated.ID)
	return nil
}
