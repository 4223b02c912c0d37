package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise <goals>",
		Short: "Ask for recommendations towards your financial goals",
		Long: `Ask for recommendations based on your income, your expenses per category
and the financial goals you describe. Goals need at least 10 characters.`,
		Example: `  budgetwise advise "Save 5000 for a car within a year"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			resp, err := store.Recommend(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(resp.Recommendations) == 0 {
				fmt.Fprintln(out, InfoStyle.Render("No recommendations for these goals."))
				return nil
			}

			fmt.Fprintln(out, FormatTitle("Recommendations"))
			for i, r := range resp.Recommendations {
				fmt.Fprintf(out, "%d. %s %s\n", i+1, HeaderStyle.Render(r.Category), r.Recommendation)
				fmt.Fprintf(out, "   %s\n", SubtleStyle.Render(r.Impact))
			}
			return nil
		},
	}
}
