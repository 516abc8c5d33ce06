package checklist

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// ChecklistCmd returns the checklist parent command
func ChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Manage ticket checklists",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ItemCmd())

	return cmd
}

// target is the ticket (and optionally checklist) a command acts on
type target struct {
	Board     models.Board
	Column    models.Column
	Ticket    models.Ticket
	Checklist models.Checklist
}

func addTargetFlags(cmd *cobra.Command, withChecklist bool) {
	cmd.Flags().String("ticket", "", "Ticket ID or title (required)")
	_ = cmd.MarkFlagRequired("ticket")
	if withChecklist {
		cmd.Flags().String("checklist", "", "Checklist ID or title (required)")
		_ = cmd.MarkFlagRequired("checklist")
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
}

// resolve finds --ticket and, when withChecklist is set, --checklist
func resolve(cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter, withChecklist bool) (target, error) {
	b, err := cli.GetBoard(cmd, cliInstance.App.Store)
	if err != nil {
		return target{}, cli.BoardError(formatter, err)
	}

	ticketRef, _ := cmd.Flags().GetString("ticket")
	found, ok := cli.FindTicket(b, ticketRef)
	if !ok {
		return target{}, formatter.Fail(cli.ExitNotFound, "TICKET_NOT_FOUND",
			fmt.Sprintf("ticket %q not found on board '%s'", ticketRef, b.Title))
	}
	tg := target{Board: b, Column: found.Column, Ticket: found.Ticket}
	if !withChecklist {
		return tg, nil
	}

	checklistRef, _ := cmd.Flags().GetString("checklist")
	cl, ok := cli.FindChecklist(found.Ticket, checklistRef)
	if !ok {
		return target{}, formatter.Fail(cli.ExitNotFound, "CHECKLIST_NOT_FOUND",
			fmt.Sprintf("checklist %q not found on ticket '%s'", checklistRef, found.Ticket.Title))
	}
	tg.Checklist = cl
	return tg, nil
}
