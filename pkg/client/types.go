package client

import (
	"github.com/budgetwise/backend/internal/types"
	"github.com/budgetwise/backend/pkg/advisor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// TransactionEditable contains the fields of a transaction that can be set.
type TransactionEditable struct {
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        types.Date      `json:"date"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

type Transaction struct {
	ID uuid.UUID `json:"id"`
	TransactionEditable
}

// TransactionPatch contains the fields to change on a transaction.
// Nil fields are left as they are.
type TransactionPatch struct {
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *types.Date      `json:"date,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// TransactionFilter restricts the transactions returned by Transactions.
// Empty fields do not filter.
type TransactionFilter struct {
	Type     string
	Category string
	Month    types.Month
	Name     string // Glob pattern, case insensitive
}

type Budget struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type Category struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

type CategoryCreate struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type CategoryCreateResponse struct {
	NewCategory Category `json:"newCategory"`
	NewBudget   Budget   `json:"newBudget"`
}

type (
	RecommendationRequest  = advisor.Request
	RecommendationResponse = advisor.Response
	Recommendation         = advisor.Recommendation
)

type message struct {
	Message string `json:"message"`
}
