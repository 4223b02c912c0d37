package state

import (
	"context"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// AddTransaction creates a transaction and appends it to the state.
func (s *Store) AddTransaction(ctx context.Context, t client.TransactionEditable) (client.Transaction, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	created, err := s.backend.CreateTransaction(ctx, t)
	if err != nil {
		return client.Transaction{}, err
	}

	s.update(func(state *Snapshot) {
		state.Transactions = append(state.Transactions, created)
	})

	return created, nil
}

// UpdateTransaction changes a transaction and replaces it in the state.
func (s *Store) UpdateTransaction(ctx context.Context, id uuid.UUID, patch client.TransactionPatch) (client.Transaction, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	updated, err := s.backend.UpdateTransaction(ctx, id, patch)
	if err != nil {
		return client.Transaction{}, err
	}

	s.update(func(state *Snapshot) {
		transactions := make([]client.Transaction, 0, len(state.Transactions))
		for _, t := range state.Transactions {
			if t.ID == id {
				t = updated
			}
			transactions = append(transactions, t)
		}
		state.Transactions = transactions
	})

	return updated, nil
}

// DeleteTransaction deletes a transaction and removes it from the state.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.context(ctx)
	defer cancel()

	if err := s.backend.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.update(func(state *Snapshot) {
		state.Transactions = slices.DeleteFunc(slices.Clone(orEmpty(state.Transactions)), func(t client.Transaction) bool {
			return t.ID == id
		})
	})

	return nil
}

// UpdateBudget sets a budget. The budget for the same category in the state
// is replaced, budgets for other categories are not added.
func (s *Store) UpdateBudget(ctx context.Context, b client.Budget) (client.Budget, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	stored, err := s.backend.UpsertBudget(ctx, b)
	if err != nil {
		return client.Budget{}, err
	}

	s.update(func(state *Snapshot) {
		budgets := make([]client.Budget, 0, len(state.Budgets))
		for _, existing := range state.Budgets {
			if existing.Category == stored.Category {
				existing = stored
			}
			budgets = append(budgets, existing)
		}
		state.Budgets = budgets
	})

	return stored, nil
}

// AddCategory creates an expense category. The category is appended to the
// state. Its budget replaces a budget for the same category or is appended.
func (s *Store) AddCategory(ctx context.Context, c client.CategoryCreate) (Category, error) {
	ctx, cancel := s.context(ctx)
	defer cancel()

	created, err := s.backend.CreateCategory(ctx, c)
	if err != nil {
		return Category{}, err
	}

	category := newCategory(created.NewCategory)
	s.update(func(state *Snapshot) {
		state.ExpenseCategories = append(state.ExpenseCategories, category)
		state.Budgets = replaceOrAppend(state.Budgets, created.NewBudget)
	})

	return category, nil
}

// RemoveCategory deletes a category. The category, its budget and all of its
// transactions are removed from the state.
//
// The API keeps the transactions, they are back after the next Load.
func (s *Store) RemoveCategory(ctx context.Context, value string) error {
	ctx, cancel := s.context(ctx)
	defer cancel()

	if err := s.backend.DeleteCategory(ctx, value); err != nil {
		return err
	}

	s.update(func(state *Snapshot) {
		state.ExpenseCategories = slices.DeleteFunc(slices.Clone(orEmpty(state.ExpenseCategories)), func(c Category) bool {
			return c.Value == value
		})
		state.Budgets = slices.DeleteFunc(slices.Clone(orEmpty(state.Budgets)), func(b client.Budget) bool {
			return b.Category == value
		})
		state.Transactions = slices.DeleteFunc(slices.Clone(orEmpty(state.Transactions)), func(t client.Transaction) bool {
			return t.Category == value
		})
	})

	return nil
}

// replaceOrAppend returns budgets with b replacing the budget for the same
// category, or with b appended if there is none.
func replaceOrAppend(budgets []client.Budget, b client.Budget) []client.Budget {
	replaced := slices.Clone(budgets)
	for i, existing := range replaced {
		if existing.Category == b.Category {
			replaced[i] = b
			return replaced
		}
	}
	return append(replaced, b)
}

// orEmpty returns an empty slice for nil. Removing from a collection that
// was never loaded leaves an empty collection.
func orEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
