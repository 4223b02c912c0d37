package models

import (
	"strings"
	"time"

	"github.com/budgetwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single income or expense entry.
type Transaction struct {
	DefaultModel
	Type        TransactionType
	Category    string          `gorm:"index"` // Value of the category. Not enforced, transactions survive the deletion of their category
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        types.Date      `gorm:"index"`
	Name        string
	Description string
}

// BeforeSave trims whitespace, defaults the date to today and validates the transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Normalize()

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now().UTC())
	}

	return t.Validate()
}

// Normalize trims surrounding whitespace from all text fields.
func (t *Transaction) Normalize() {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
}

// Validate checks the invariants of a transaction.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if strings.TrimSpace(t.Name) == "" {
		return ErrTransactionNameEmpty
	}

	return nil
}
