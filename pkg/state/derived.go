package state

import (
	"strings"

	"github.com/budgetwise/backend/pkg/client"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Totals are the sums over all transactions.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// MonthSpending is the sum of expenses in one month.
type MonthSpending struct {
	Month string // YYYY-MM
	Spent decimal.Decimal
}

// BudgetUsage compares a budget to the expenses in its category.
type BudgetUsage struct {
	Category  string
	Label     string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Progress  decimal.Decimal // Spent in percent of the budget, 0 for budgets of 0
}

// Totals returns income, expenses and their difference. All values are zero
// before transactions are loaded.
func (s Snapshot) Totals() Totals {
	var t Totals
	for _, tr := range s.Transactions {
		switch tr.Type {
		case client.TypeIncome:
			t.Income = t.Income.Add(tr.Amount)
		case client.TypeExpense:
			t.Expenses = t.Expenses.Add(tr.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t
}

// ExpensesByCategory returns the sum of expenses per category value.
func (s Snapshot) ExpensesByCategory() map[string]decimal.Decimal {
	expenses := map[string]decimal.Decimal{}
	for _, t := range s.Transactions {
		if t.Type != client.TypeExpense {
			continue
		}
		expenses[t.Category] = expenses[t.Category].Add(t.Amount)
	}
	return expenses
}

// MonthlySpending returns the expenses per month, oldest month first.
func (s Snapshot) MonthlySpending() []MonthSpending {
	byMonth := map[string]decimal.Decimal{}
	for _, t := range s.Transactions {
		if t.Type != client.TypeExpense {
			continue
		}
		month := t.Date.Month().String()
		byMonth[month] = byMonth[month].Add(t.Amount)
	}

	spending := make([]MonthSpending, 0, len(byMonth))
	for month, spent := range byMonth {
		spending = append(spending, MonthSpending{Month: month, Spent: spent})
	}

	slices.SortFunc(spending, func(a, b MonthSpending) int {
		return strings.Compare(a.Month, b.Month)
	})
	return spending
}

// RecentTransactions returns up to n transactions, newest first. It is empty
// for n <= 0.
func (s Snapshot) RecentTransactions(n int) []client.Transaction {
	if n <= 0 {
		return []client.Transaction{}
	}

	recent := slices.Clone(s.Transactions)
	slices.SortStableFunc(recent, func(a, b client.Transaction) int {
		return b.Date.Time().Compare(a.Date.Time())
	})

	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// BudgetUsage returns the usage of every budget in the order of the budgets.
func (s Snapshot) BudgetUsage() []BudgetUsage {
	labels := map[string]string{}
	for _, c := range s.ExpenseCategories {
		labels[c.Value] = c.Label
	}

	spent := s.ExpensesByCategory()
	title := cases.Title(language.English)
	hundred := decimal.NewFromInt(100)

	usage := make([]BudgetUsage, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		label, ok := labels[b.Category]
		if !ok {
			label = title.String(b.Category)
		}

		u := BudgetUsage{
			Category:  b.Category,
			Label:     label,
			Budget:    b.Amount,
			Spent:     spent[b.Category],
			Remaining: b.Amount.Sub(spent[b.Category]),
		}

		if b.Amount.IsPositive() {
			u.Progress = u.Spent.Div(b.Amount).Mul(hundred)
		}

		usage = append(usage, u)
	}
	return usage
}

// Totals returns the totals of the current state.
func (s *Store) Totals() Totals {
	return s.Snapshot().Totals()
}

// ExpensesByCategory returns the expenses per category of the current state.
func (s *Store) ExpensesByCategory() map[string]decimal.Decimal {
	return s.Snapshot().ExpensesByCategory()
}
