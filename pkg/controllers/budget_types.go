package controllers

import (
	"github.com/budgetwise/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Budget is the API representation of a budget. The category identifies it.
type Budget struct {
	Category string          `json:"category" example:"groceries"`   // Value of the category the budget is for
	Amount   decimal.Decimal `json:"amount" example:"500" minimum:"0"` // Monthly limit. Must not be negative
}

func (b Budget) model() models.Budget {
	return models.Budget{
		Category: b.Category,
		Amount:   b.Amount,
	}
}

func newBudget(m models.Budget) Budget {
	return Budget{
		Category: m.Category,
		Amount:   m.Amount,
	}
}
