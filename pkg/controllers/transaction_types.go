package controllers

import (
	"github.com/budgetwise/backend/internal/types"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields of a transaction that can be set by users.
type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"expense"`                                    // Either "income" or "expense"
	Category    string                 `json:"category" example:"food"`                                   // Value of the category
	Amount      decimal.Decimal        `json:"amount" example:"14.03" minimum:"0"`                        // Amount of the transaction. Must not be negative
	Date        types.Date             `json:"date" example:"2024-01-15" swaggertype:"primitive,string"` // Date of the transaction. Defaults to today
	Name        string                 `json:"name" example:"Lunch"`                                      // Short name of the transaction
	Description string                 `json:"description" example:"Burrito at the food truck"`           // Optional description
}

func (e TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        e.Type,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Name:        e.Name,
		Description: e.Description,
	}
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the transaction
	TransactionEditable
}

func newTransaction(m models.Transaction) Transaction {
	return Transaction{
		ID: m.ID,
		TransactionEditable: TransactionEditable{
			Type:        m.Type,
			Category:    m.Category,
			Amount:      m.Amount,
			Date:        m.Date,
			Name:        m.Name,
			Description: m.Description,
		},
	}
}

type TransactionQueryFilter struct {
	Type     models.TransactionType `form:"type" example:"expense"`                                              // Only return transactions of this type
	Category string                 `form:"category" example:"food"`                                             // Only return transactions in this category
	Month    types.Month            `form:"month" filterField:"false" example:"2024-01"`                         // Only return transactions in this month, YYYY-MM
	Name     string                 `form:"name" filterField:"false" example:"Coffee*"`                          // Glob pattern the name must match, case insensitive
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type:     f.Type,
		Category: f.Category,
	}
}
