package checklist

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pinboard/internal/cli"
	"github.com/thenoetrevino/pinboard/internal/models"
)

// ItemCmd returns the checklist item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage checklist items",
	}

	cmd.AddCommand(itemAddCmd())
	cmd.AddCommand(itemSetCmd("check", "Mark an item as done", true))
	cmd.AddCommand(itemSetCmd("uncheck", "Mark an item as not done", false))
	cmd.AddCommand(itemRenameCmd())
	cmd.AddCommand(itemDeleteCmd())

	return cmd
}

func itemAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an item to a checklist",
		Long: `Append an unchecked item to a checklist.

Examples:
  pinboard checklist item add --ticket="Fix login" --checklist="Steps" --text="Reproduce"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			raw, _ := cmd.Flags().GetString("text")
			text, err := cli.ValidateTitle(raw)
			if err != nil {
				return formatter.Fail(cli.ExitValidation, "INVALID_TEXT", "item text cannot be empty")
			}

			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
			}
			defer func() { _ = cliInstance.Close() }()

			tg, err := resolve(cmd, cliInstance, formatter, true)
			if err != nil {
				return err
			}
			id, ok := cliInstance.App.Store.AddChecklistItem(tg.Board.ID, tg.Column.ID, tg.Ticket.ID, tg.Checklist.ID, text)
			if !ok {
				return formatter.Fail(cli.ExitNotFound, "CHECKLIST_NOT_FOUND", fmt.Sprintf("checklist %s not found", tg.Checklist.ID))
			}
			item := models.ChecklistItem{ID: id, Text: text}

			if formatter.Quiet || formatter.JSON {
				return formatter.Success("item", item)
			}
			fmt.Printf("✓ Item '%s' added to '%s' (ID: %s)\n", item.Text, tg.Checklist.Title, item.ID)
			return nil
		},
	}

	cmd.Flags().String("text", "", "Item text (required)")
	_ = cmd.MarkFlagRequired("text")
	addTargetFlags(cmd, true)

	return cmd
}

func itemSetCmd(use, short string, completed bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: fmt.Sprintf(`%s. --item takes an item ID or its text.

Examples:
  pinboard checklist item %s --ticket="Fix login" --checklist="Steps" --item="Reproduce"
`, short, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateItem(cmd, models.ChecklistItemUpdate{Completed: &completed})
		},
	}

	addItemFlag(cmd)
	addTargetFlags(cmd, true)

	return cmd
}

func itemRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Change an item's text",
		Long: `Change an item's text.

Examples:
  pinboard checklist item rename --ticket="Fix login" --checklist="Steps" --item="Reproduce" --text="Reproduce on Safari"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("text")
			text, err := cli.ValidateTitle(raw)
			if err != nil {
				return cli.NewFormatter(cmd).Fail(cli.ExitValidation, "INVALID_TEXT", "item text cannot be empty")
			}
			return updateItem(cmd, models.ChecklistItemUpdate{Text: &text})
		},
	}

	cmd.Flags().String("text", "", "New item text (required)")
	_ = cmd.MarkFlagRequired("text")
	addItemFlag(cmd)
	addTargetFlags(cmd, true)

	return cmd
}

func itemDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove an item from a checklist",
		Long: `Remove an item from a checklist.

Examples:
  pinboard checklist item delete --ticket="Fix login" --checklist="Steps" --item="Reproduce"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
			}
			defer func() { _ = cliInstance.Close() }()

			tg, item, err := resolveItem(cmd, cliInstance, formatter)
			if err != nil {
				return err
			}
			if !cliInstance.App.Store.DeleteChecklistItem(tg.Board.ID, tg.Column.ID, tg.Ticket.ID, tg.Checklist.ID, item.ID) {
				return formatter.Fail(cli.ExitNotFound, "ITEM_NOT_FOUND", fmt.Sprintf("item %s not found", item.ID))
			}

			if formatter.Quiet || formatter.JSON {
				return formatter.Success("item", item)
			}
			fmt.Printf("✓ Item '%s' deleted (ID: %s)\n", item.Text, item.ID)
			return nil
		},
	}

	addItemFlag(cmd)
	addTargetFlags(cmd, true)

	return cmd
}

func addItemFlag(cmd *cobra.Command) {
	cmd.Flags().String("item", "", "Item ID or text (required)")
	_ = cmd.MarkFlagRequired("item")
}

func resolveItem(cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) (target, models.ChecklistItem, error) {
	tg, err := resolve(cmd, cliInstance, formatter, true)
	if err != nil {
		return target{}, models.ChecklistItem{}, err
	}
	ref, _ := cmd.Flags().GetString("item")
	item, ok := cli.FindItem(tg.Checklist, ref)
	if !ok {
		return target{}, models.ChecklistItem{}, formatter.Fail(cli.ExitNotFound, "ITEM_NOT_FOUND",
			fmt.Sprintf("item %q not found in checklist '%s'", ref, tg.Checklist.Title))
	}
	return tg, item, nil
}

func updateItem(cmd *cobra.Command, u models.ChecklistItemUpdate) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error())
	}
	defer func() { _ = cliInstance.Close() }()

	tg, item, err := resolveItem(cmd, cliInstance, formatter)
	if err != nil {
		return err
	}
	if !cliInstance.App.Store.UpdateChecklistItem(tg.Board.ID, tg.Column.ID, tg.Ticket.ID, tg.Checklist.ID, item.ID, u) {
		return formatter.Fail(cli.ExitNotFound, "ITEM_NOT_FOUND", fmt.Sprintf("item %s not found", item.ID))
	}
	item.Apply(u)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success("item", item)
	}

	box := "[ ]"
	if item.Completed {
		box = "[x]"
	}
	fmt.Printf("✓ %s %s (ID: %s)\n", box, item.Text, item.ID)
	return nil
}
