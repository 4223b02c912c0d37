package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the monthly spending limit for one category.
type Budget struct {
	DefaultModel
	Category string          `gorm:"uniqueIndex"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	return b.Validate()
}

// Validate checks the invariants of a budget.
func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return ErrBudgetCategoryEmpty
	}

	if b.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// UpsertBudget sets the amount of the budget for its category, creating the
// budget if none exists yet. The stored budget is returned.
func UpsertBudget(db *gorm.DB, budget Budget) (Budget, error) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, fmt.Errorf("could not save budget for %s: %w", budget.Category, err)
	}

	var stored Budget
	err = db.Where(&Budget{Category: budget.Category}).First(&stored).Error
	if err != nil {
		return Budget{}, err
	}

	return stored, nil
}

// DeleteBudget deletes the budget for a category.
func DeleteBudget(db *gorm.DB, category string) error {
	var budget Budget
	err := db.Where(&Budget{Category: category}).First(&budget).Error
	if err != nil {
		return err
	}

	return db.Delete(&budget).Error
}
