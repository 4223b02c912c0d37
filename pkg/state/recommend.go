package state

import (
	"context"

	"github.com/budgetwise/backend/pkg/client"
)

// Recommend asks for recommendations based on the income and the expenses
// in the current state.
//
// Generating recommendations takes longer than other calls, only ctx
// limits its duration.
func (s *Store) Recommend(ctx context.Context, goals string) (client.RecommendationResponse, error) {
	snapshot := s.Snapshot()

	return s.backend.Recommend(ctx, client.RecommendationRequest{
		Income:         snapshot.Totals().Income,
		Expenses:       snapshot.ExpensesByCategory(),
		FinancialGoals: goals,
	})
}
