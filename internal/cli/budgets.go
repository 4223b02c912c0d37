package cli

import (
	"fmt"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/spf13/cobra"
)

func (a *app) budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show and set monthly budgets",
	}

	cmd.AddCommand(a.budgetsListCmd(), a.budgetsSetCmd())

	return cmd
}

func (a *app) budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with their usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			usage := store.Snapshot().BudgetUsage()
			if len(usage) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), InfoStyle.Render("No budgets found."))
				return nil
			}

			return printBudgetUsage(cmd.OutOrStdout(), usage)
		},
	}
}

func (a *app) budgetsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the budget of a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			b, err := store.UpdateBudget(cmd.Context(), client.Budget{Category: args[0], Amount: amount})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("Budget for %s set to %s", b.Category, money(b.Amount))))
			return nil
		},
	}
}
