package cli

import (
	"fmt"
	"io"

	"github.com/budgetwise/backend/pkg/state"
	"github.com/spf13/cobra"
)

func (a *app) summaryCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals, budget usage and recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if recent < 0 {
				return fmt.Errorf("--recent must not be negative, got %d", recent)
			}

			store, err := a.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), store.Snapshot(), recent)
		},
	}

	cmd.Flags().IntVarP(&recent, "recent", "n", 5, "number of recent transactions to show")

	return cmd
}

func printSummary(out io.Writer, s state.Snapshot, recent int) error {
	totals := s.Totals()

	fmt.Fprintln(out, FormatTitle("Summary"))
	fmt.Fprintf(out, "Income:   %s\n", SuccessStyle.Render(money(totals.Income)))
	fmt.Fprintf(out, "Expenses: %s\n", ErrorStyle.Render(money(totals.Expenses)))
	fmt.Fprintf(out, "Net:      %s\n", money(totals.Net))
	fmt.Fprintln(out)

	fmt.Fprintln(out, TitleStyle.Render("Budgets"))
	if err := printBudgetUsage(out, s.BudgetUsage()); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, TitleStyle.Render("Recent transactions"))
	transactions := s.RecentTransactions(recent)
	if len(transactions) == 0 {
		fmt.Fprintln(out, SubtleStyle.Render("No transactions yet."))
	} else if err := printTransactions(out, transactions); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, TitleStyle.Render("Monthly spending"))
	spending := s.MonthlySpending()
	if len(spending) == 0 {
		fmt.Fprintln(out, SubtleStyle.Render("No expenses yet."))
		return nil
	}

	t := newTable(out, "Month", "Spent")
	for _, m := range spending {
		t.row(m.Month, money(m.Spent))
	}
	return t.flush()
}

func printBudgetUsage(out io.Writer, usage []state.BudgetUsage) error {
	t := newTable(out, "Category", "Budget", "Spent", "Remaining", "Progress", "")
	for _, u := range usage {
		progress := percent(u.Progress)
		if u.Remaining.IsNegative() {
			progress = OverBudgetStyle.Render(progress)
		}

		t.row(u.Label, money(u.Budget), money(u.Spent), money(u.Remaining), progress, bar(u.Progress, 20))
	}
	return t.flush()
}
