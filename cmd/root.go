package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli/board"
	"github.com/thenoetrevino/pinboard/internal/cli/checklist"
	"github.com/thenoetrevino/pinboard/internal/cli/column"
	"github.com/thenoetrevino/pinboard/internal/cli/ticket"
	"github.com/thenoetrevino/pinboard/internal/cli/workspace"
	"github.com/thenoetrevino/pinboard/internal/launcher"
)

// NewRootCmd builds the pinboard command tree. Without a subcommand it
// opens the board view.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pinboard",
		Short: "Pinboard - A terminal-based kanban board",
		Long: `Pinboard is a terminal-based kanban board. Boards hold columns,
columns hold tickets, and tickets are moved by dragging them with the
keyboard. Every change is saved as it happens.

Run without arguments to open the board view, or use the subcommands
to script your boards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(ticket.TicketCmd())
	rootCmd.AddCommand(checklist.ChecklistCmd())
	rootCmd.AddCommand(workspace.SearchCmd())
	rootCmd.AddCommand(workspace.ActivityCmd())
	rootCmd.AddCommand(workspace.ClearCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
