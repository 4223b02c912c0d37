package cli

import (
	"fmt"
	"strconv"

	"github.com/budgetwise/backend/pkg/cards"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cards above this utilization are highlighted.
var highUtilization = decimal.NewFromFloat(0.3)

func (a *app) cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards in the card service",
	}

	cmd.AddCommand(
		a.cardsListCmd(),
		a.cardsAddCmd(),
		a.cardsUpdateCmd(),
		a.cardsDeleteCmd(),
		a.cardsHistoryCmd(),
		a.cardsStatusCmd(),
	)

	return cmd
}

func (a *app) cardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List credit cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.cards()
			if err != nil {
				return err
			}

			list, err := c.Cards(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, InfoStyle.Render("No cards found. Use 'budgetwise cards add' to create one."))
				return nil
			}

			t := newTable(out, "ID", "Name", "Limit", "Balance", "Utilization")
			for _, card := range list {
				utilization := card.Utilization()
				shown := percent(utilization.Mul(decimal.NewFromInt(100)))
				if utilization.GreaterThan(highUtilization) {
					shown = WarningStyle.Render(shown)
				}

				t.row(strconv.FormatInt(card.ID, 10), card.CardName, money(card.CreditLimit), money(card.CurrentBalance), shown)
			}
			return t.flush()
		},
	}
}

// cardRequestCmd builds add and update, which take the same arguments.
func (a *app) cardRequestCmd(use, short, done string, send func(*cards.Client, *cobra.Command, cards.CardRequest) (cards.Card, error)) *cobra.Command {
	var balance string

	cmd := &cobra.Command{
		Use:   use + " <name> <limit>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := cards.CardRequest{CardName: args[0]}

			var err error
			if req.CreditLimit, err = parseAmount(args[1]); err != nil {
				return err
			}
			if req.CurrentBalance, err = parseAmount(balance); err != nil {
				return err
			}

			c, err := a.cards()
			if err != nil {
				return err
			}

			card, err := send(c, cmd, req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("%s card %q, limit %s, balance %s", done, card.CardName, money(card.CreditLimit), money(card.CurrentBalance))))
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "0", "current balance")

	return cmd
}

func (a *app) cardsAddCmd() *cobra.Command {
	return a.cardRequestCmd("add", "Add a credit card", "Added", func(c *cards.Client, cmd *cobra.Command, req cards.CardRequest) (cards.Card, error) {
		return c.AddCard(cmd.Context(), req)
	})
}

func (a *app) cardsUpdateCmd() *cobra.Command {
	return a.cardRequestCmd("update", "Set limit and balance of the card with this name", "Updated", func(c *cards.Client, cmd *cobra.Command, req cards.CardRequest) (cards.Card, error) {
		return c.UpdateCard(cmd.Context(), req)
	})
}

func (a *app) cardsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a credit card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			c, err := a.cards()
			if err != nil {
				return err
			}

			if err := c.DeleteCard(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatSuccess(fmt.Sprintf("Deleted card %d", id)))
			return nil
		},
	}
}

func (a *app) cardsHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the balance history of a credit card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCardID(args[0])
			if err != nil {
				return err
			}

			c, err := a.cards()
			if err != nil {
				return err
			}

			history, err := c.History(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, InfoStyle.Render("No balance history for this card."))
				return nil
			}

			t := newTable(out, "Recorded", "Balance")
			for _, h := range history {
				t.row(h.RecordedAt.Format("2006-01-02 15:04"), money(h.Balance))
			}
			return t.flush()
		},
	}
}

func (a *app) cardsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the card service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.cards()
			if err != nil {
				return err
			}

			status, err := c.Status(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), FormatInfo("Card service status: "+status.Status))
			return nil
		},
	}
}

func parseCardID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid card ID %q", s)
	}
	return id, nil
}
