package cli

import (
	"fmt"
	"io"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/budgetwise/backend/pkg/state"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
	}

	cmd.AddCommand(
		a.categoriesListCmd(),
		a.categoriesAddCmd(),
		a.categoriesRemoveCmd(),
	)

	return cmd
}

func (a *app) categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expense and income categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			s := store.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, TitleStyle.Render("Expense categories"))
			if err := printCategories(out, s.ExpenseCategories); err != nil {
				return err
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, TitleStyle.Render("Income categories"))
			return printCategories(out, s.IncomeCategories)
		},
	}
}

func (a *app) categoriesAddCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <value> <label>",
		Short: "Add an expense category",
		Long: `Add an expense category. The value is the identifier used by transactions
and budgets, it must consist of lowercase letters, digits and dashes.

The budget of the category is set to 0, replacing an existing one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			c, err := store.AddCategory(cmd.Context(), client.CategoryCreate{Value: args[0], Label: args[1], Icon: icon})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("Added category %s (%s) with icon %s", c.Label, c.Value, c.Icon)))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon name (default: Package)")

	return cmd
}

func (a *app) categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <value>",
		Aliases: []string{"rm"},
		Short:   "Remove a custom expense category",
		Long: `Remove a custom expense category and its budget. Default categories
cannot be removed. Transactions in the category are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}

			if err := store.RemoveCategory(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess("Removed category "+args[0]))
			return nil
		},
	}
}

func printCategories(out io.Writer, categories []state.Category) error {
	if len(categories) == 0 {
		fmt.Fprintln(out, SubtleStyle.Render("None."))
		return nil
	}

	t := newTable(out, "Value", "Label", "Icon", "")
	for _, c := range categories {
		kind := "custom"
		if c.IsDefault {
			kind = SubtleStyle.Render("default")
		}
		t.row(c.Value, c.Label, string(c.Icon), kind)
	}
	return t.flush()
}
