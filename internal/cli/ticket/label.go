package ticket

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
)

// LabelCmd returns the ticket label subcommand
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Add, remove or toggle ticket labels",
		Long: `Change a ticket's labels. Adding a label the ticket already has
appends it again; removing drops every copy.

Examples:
  pinboard ticket label --ticket="Fix login" --add=Bug --add=Urgent
  pinboard ticket label --ticket="Fix login" --remove=Urgent
  pinboard ticket label --ticket="Fix login" --toggle=Design
`,
		RunE: runLabel,
	}

	addTicketFlag(cmd)
	cmd.Flags().StringSlice("add", nil, "Label to append (repeatable)")
	cmd.Flags().StringSlice("remove", nil, "Label to remove (repeatable)")
	cmd.Flags().StringSlice("toggle", nil, "Label to toggle (repeatable)")
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLabel(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	add, _ := cmd.Flags().GetStringSlice("add")
	remove, _ := cmd.Flags().GetStringSlice("remove")
	toggle, _ := cmd.Flags().GetStringSlice("toggle")
	if len(add)+len(remove)+len(toggle) == 0 {
		return formatter.FailWithSuggestion(cli.ExitUsage, "NO_UPDATES",
			"no labels given", "Pass --add, --remove or --toggle")
	}
	for _, l := range append(append(append([]string{}, add...), remove...), toggle...) {
		if _, err := cli.ValidateTitle(l); err != nil {
			return formatter.Fail(cli.ExitValidation, "INVALID_LABEL", "label cannot be empty")
		}
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	loc, err := lookup(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}

	s := cliInstance.App.Store
	b, c, id := loc.Board.ID, loc.Column.ID, loc.Ticket.ID
	for _, l := range add {
		s.AddLabel(b, c, id, l)
	}
	for _, l := range remove {
		s.RemoveLabel(b, c, id, l)
	}
	for _, l := range toggle {
		s.ToggleLabel(b, c, id, l)
	}
	t, ok := s.Ticket(b, c, id)
	if !ok {
		return formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND", fmt.Sprintf("ticket %s not found", id))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("ticket", t)
	}

	fmt.Printf("✓ Labels on '%s': %v\n", t.Title, t.Labels)
	return nil
}
