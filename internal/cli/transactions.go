package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/budgetwise/backend/internal/types"
	"github.com/budgetwise/backend/pkg/client"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage income and expense transactions",
	}

	cmd.AddCommand(
		a.transactionsListCmd(),
		a.transactionsAddCmd(),
		a.transactionsUpdateCmd(),
		a.transactionsDeleteCmd(),
	)

	return cmd
}

func (a *app) transactionsListCmd() *cobra.Command {
	var filter client.TransactionFilter
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if month != "" {
				m, err := types.ParseMonth(month)
				if err != nil {
					return fmt.Errorf("invalid month %q, use YYYY-MM", month)
				}
				filter.Month = m
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			transactions, err := c.Transactions(cmd.Context(), filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(transactions) == 0 {
				fmt.Fprintln(out, InfoStyle.Render("No transactions found. Use 'budgetwise transactions add' to create one."))
				return nil
			}

			return printTransactions(out, transactions)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Type, "type", "", "only show transactions of this type (income, expense)")
	flags.StringVar(&filter.Category, "category", "", "only show transactions in this category")
	flags.StringVar(&month, "month", "", "only show transactions in this month (YYYY-MM)")
	flags.StringVar(&filter.Name, "name", "", "only show transactions with a name matching this glob pattern")

	return cmd
}

func (a *app) transactionsAddCmd() *cobra.Command {
	var (
		t      client.TransactionEditable
		amount string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if t.Amount, err = parseAmount(amount); err != nil {
				return err
			}

			if date == "" {
				t.Date = types.DateOf(time.Now())
			} else if t.Date, err = parseDate(date); err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			created, err := store.AddTransaction(cmd.Context(), t)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("Added %s %q (%s) with ID %s", created.Type, created.Name, money(created.Amount), created.ID)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&t.Type, "type", client.TypeExpense, "income or expense")
	flags.StringVar(&t.Category, "category", "", "category of the transaction")
	flags.StringVar(&amount, "amount", "", "amount, not negative")
	flags.StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	flags.StringVar(&t.Name, "name", "", "name of the transaction")
	flags.StringVar(&t.Description, "description", "", "description of the transaction")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *app) transactionsUpdateCmd() *cobra.Command {
	var (
		kind, category, amount, date, name, description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a transaction",
		Long:  "Change fields of a transaction. Only the fields given as flags are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch client.TransactionPatch
			flags := cmd.Flags()

			if flags.Changed("type") {
				patch.Type = &kind
			}
			if flags.Changed("category") {
				patch.Category = &category
			}
			if flags.Changed("amount") {
				d, err := parseAmount(amount)
				if err != nil {
					return err
				}
				patch.Amount = &d
			}
			if flags.Changed("date") {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				patch.Date = &d
			}
			if flags.Changed("name") {
				patch.Name = &name
			}
			if flags.Changed("description") {
				patch.Description = &description
			}

			if patch == (client.TransactionPatch{}) {
				return fmt.Errorf("nothing to update, set at least one of --type, --category, --amount, --date, --name or --description")
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			updated, err := store.UpdateTransaction(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("Updated %q (%s)", updated.Name, money(updated.Amount))))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "type", "", "income or expense")
	flags.StringVar(&category, "category", "", "category of the transaction")
	flags.StringVar(&amount, "amount", "", "amount, not negative")
	flags.StringVar(&date, "date", "", "date as YYYY-MM-DD")
	flags.StringVar(&name, "name", "", "name of the transaction")
	flags.StringVar(&description, "description", "", "description of the transaction")

	return cmd
}

func (a *app) transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := a.store()
			if err != nil {
				return err
			}

			if err := store.DeleteTransaction(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess("Deleted transaction "+id.String()))
			return nil
		},
	}
}

func printTransactions(out io.Writer, transactions []client.Transaction) error {
	t := newTable(out, "ID", "Date", "Type", "Category", "Amount", "Name")
	for _, tr := range transactions {
		amount := money(tr.Amount)
		if tr.Type == client.TypeIncome {
			amount = SuccessStyle.Render("+" + amount)
		} else {
			amount = ErrorStyle.Render("-" + amount)
		}

		t.row(tr.ID.String(), tr.Date.String(), tr.Type, tr.Category, amount, tr.Name)
	}
	return t.flush()
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid transaction ID %q", s)
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

func parseDate(s string) (types.Date, error) {
	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return d, nil
}
