package athletiq

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

var (
	shoppingFile        string
	shoppingJSON        bool
	shoppingSave        bool
	shoppingCategory    string
	shoppingPendingOnly bool
	shoppingClearAll    bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Extract and manage the shopping list",
}

var shoppingExtractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract shopping ingredients from recipe text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args, shoppingFile)
		if err != nil {
			return err
		}
		items := synthesis.ExtractShoppingIngredients(text)

		if shoppingSave {
			err := withDB(func(sqldb *sql.DB) error {
				n, err := service.AddShoppingItems(sqldb, items)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d items\n", n)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if shoppingJSON {
			return printJSON(cmd, items)
		}
		for _, item := range items {
			if item.Unit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s de %s\n", item.Category, item.Quantity, item.Unit, item.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s %s\n", item.Category, item.Quantity, item.Name)
			}
		}
		return nil
	},
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored shopping items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListShoppingItems(sqldb, service.ListShoppingFilter{
				Category:    shoppingCategory,
				PendingOnly: shoppingPendingOnly,
			})
			if err != nil {
				return err
			}
			if shoppingJSON {
				return printJSON(cmd, items)
			}
			for _, item := range items {
				mark := " "
				if item.Checked {
					mark = "x"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%4d [%s] %s — %s %s (%s)\n", item.ID, mark, item.Name, item.Quantity, item.Unit, item.Category)
			}
			return nil
		})
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Mark a shopping item as bought",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.SetShoppingItemChecked(sqldb, id, true)
		})
	},
}

var shoppingUncheckCmd = &cobra.Command{
	Use:   "uncheck <id>",
	Short: "Mark a shopping item as pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.SetShoppingItemChecked(sqldb, id, false)
		})
	},
}

var shoppingDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a shopping item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			return service.DeleteShoppingItem(sqldb, id)
		})
	},
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove checked items (or everything with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.ClearShoppingItems(sqldb, !shoppingClearAll)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d items\n", removed)
			return nil
		})
	},
}

func init() {
	shoppingExtractCmd.Flags().StringVar(&shoppingFile, "file", "", "Read input text from a file")
	shoppingExtractCmd.Flags().BoolVar(&shoppingSave, "save", false, "Persist extracted items")
	shoppingExtractCmd.Flags().BoolVar(&shoppingJSON, "json", false, "Print extracted items as JSON")
	shoppingListCmd.Flags().StringVar(&shoppingCategory, "category", "", "Only list one category")
	shoppingListCmd.Flags().BoolVar(&shoppingPendingOnly, "pending", false, "Only list unchecked items")
	shoppingListCmd.Flags().BoolVar(&shoppingJSON, "json", false, "Print items as JSON")
	shoppingClearCmd.Flags().BoolVar(&shoppingClearAll, "all", false, "Remove every item, not just checked ones")

	shoppingCmd.AddCommand(shoppingExtractCmd)
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingCheckCmd)
	shoppingCmd.AddCommand(shoppingUncheckCmd)
	shoppingCmd.AddCommand(shoppingDeleteCmd)
	shoppingCmd.AddCommand(shoppingClearCmd)
	rootCmd.AddCommand(shoppingCmd)
}
