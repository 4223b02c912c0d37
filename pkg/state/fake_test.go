package state_test

import (
	"context"
	"errors"
	"sync"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend keeps all data in memory. Setting an error for a method
// makes all calls of it fail.
type fakeBackend struct {
	mu           sync.Mutex
	transactions []client.Transaction
	budgets      []client.Budget
	categories   []client.Category
	errs         map[string]error
	recommend    client.RecommendationRequest

	// When set, UpsertBudget blocks until the channel is closed
	upsertGate chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		transactions: []client.Transaction{
			{ID: uuid.New(), TransactionEditable: client.TransactionEditable{Type: client.TypeIncome, Category: "salary", Amount: decimal.NewFromInt(3000), Name: "Salary"}},
			{ID: uuid.New(), TransactionEditable: client.TransactionEditable{Type: client.TypeExpense, Category: "food", Amount: decimal.NewFromInt(120), Name: "Groceries"}},
		},
		budgets: []client.Budget{
			{Category: "food", Amount: decimal.NewFromInt(400)},
			{Category: "housing", Amount: decimal.NewFromInt(1600)},
		},
		categories: []client.Category{
			{Value: "food", Label: "Food", Icon: "Utensils", Type: client.TypeExpense, IsDefault: true},
			{Value: "housing", Label: "Housing", Icon: "housing", Type: client.TypeExpense, IsDefault: true},
			{Value: "salary", Label: "Salary", Icon: "Briefcase", Type: client.TypeIncome, IsDefault: true},
		},
		errs: map[string]error{},
	}
}

func (f *fakeBackend) fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *fakeBackend) err(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs[method]
}

func (f *fakeBackend) Transactions(ctx context.Context, _ client.TransactionFilter) ([]client.Transaction, error) {
	if err := f.err("Transactions"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.Transaction{}, f.transactions...), nil
}

func (f *fakeBackend) CreateTransaction(_ context.Context, t client.TransactionEditable) (client.Transaction, error) {
	if err := f.err("CreateTransaction"); err != nil {
		return client.Transaction{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	created := client.Transaction{ID: uuid.New(), TransactionEditable: t}
	f.transactions = append(f.transactions, created)
	return created, nil
}

func (f *fakeBackend) UpdateTransaction(_ context.Context, id uuid.UUID, patch client.TransactionPatch) (client.Transaction, error) {
	if err := f.err("UpdateTransaction"); err != nil {
		return client.Transaction{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.transactions {
		if t.ID != id {
			continue
		}

		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		f.transactions[i] = t
		return t, nil
	}
	return client.Transaction{}, &client.APIError{Status: 404, Message: "there is no transaction matching your query"}
}

func (f *fakeBackend) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	if err := f.err("DeleteTransaction"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return &client.APIError{Status: 404, Message: "there is no transaction matching your query"}
}

func (f *fakeBackend) Budgets(context.Context) ([]client.Budget, error) {
	if err := f.err("Budgets"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.Budget{}, f.budgets...), nil
}

func (f *fakeBackend) UpsertBudget(ctx context.Context, b client.Budget) (client.Budget, error) {
	f.mu.Lock()
	gate := f.upsertGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return client.Budget{}, ctx.Err()
		}
	}

	if err := f.err("UpsertBudget"); err != nil {
		return client.Budget{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.budgets {
		if existing.Category == b.Category {
			f.budgets[i] = b
			return b, nil
		}
	}
	f.budgets = append(f.budgets, b)
	return b, nil
}

func (f *fakeBackend) Categories(context.Context) ([]client.Category, error) {
	if err := f.err("Categories"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.Category{}, f.categories...), nil
}

func (f *fakeBackend) CreateCategory(_ context.Context, c client.CategoryCreate) (client.CategoryCreateResponse, error) {
	if err := f.err("CreateCategory"); err != nil {
		return client.CategoryCreateResponse{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	category := client.Category{Value: c.Value, Label: c.Label, Icon: c.Icon, Type: client.TypeExpense}
	if category.Icon == "" {
		category.Icon = "Package"
	}
	budget := client.Budget{Category: c.Value, Amount: decimal.Zero}

	f.categories = append(f.categories, category)
	f.budgets = slices.DeleteFunc(f.budgets, func(b client.Budget) bool { return b.Category == c.Value })
	f.budgets = append(f.budgets, budget)
	return client.CategoryCreateResponse{NewCategory: category, NewBudget: budget}, nil
}

func (f *fakeBackend) DeleteCategory(_ context.Context, value string) error {
	if err := f.err("DeleteCategory"); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, c := range f.categories {
		if c.Value != value {
			continue
		}

		if c.IsDefault {
			return &client.APIError{Status: 400, Message: "cannot delete default category"}
		}

		f.categories = append(f.categories[:i], f.categories[i+1:]...)
		return nil
	}
	return &client.APIError{Status: 404, Message: "there is no category matching your query"}
}

func (f *fakeBackend) Recommend(_ context.Context, req client.RecommendationRequest) (client.RecommendationResponse, error) {
	if err := f.err("Recommend"); err != nil {
		return client.RecommendationResponse{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.recommend = req

	return client.RecommendationResponse{Recommendations: []client.Recommendation{
		{Category: "food", Recommendation: "Cook more", Impact: "Saves money"},
	}}, nil
}
