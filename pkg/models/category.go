package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryType is the kind of transactions a category is used for.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultIcon is used for categories created without an icon.
const DefaultIcon = "Package"

var categoryValue = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Category groups transactions and budgets.
type Category struct {
	DefaultModel
	Value     string `gorm:"uniqueIndex"`
	Label     string
	Icon      string
	Type      CategoryType
	IsDefault bool
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Value = strings.TrimSpace(c.Value)
	c.Label = strings.TrimSpace(c.Label)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Icon == "" {
		c.Icon = DefaultIcon
	}

	if c.Type == "" {
		c.Type = CategoryTypeExpense
	}

	return c.Validate()
}

// BeforeDelete refuses to delete default categories.
func (c *Category) BeforeDelete(_ *gorm.DB) error {
	if c.IsDefault {
		return ErrCategoryIsDefault
	}
	return nil
}

// Validate checks the invariants of a category.
func (c Category) Validate() error {
	if !categoryValue.MatchString(c.Value) {
		return ErrCategoryValueInvalid
	}

	if c.Label == "" {
		return ErrCategoryLabelEmpty
	}

	if c.Type != CategoryTypeIncome && c.Type != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// CreateCategory creates a user defined expense category together with a
// budget of zero for it. An existing budget for the category is reset to zero.
func CreateCategory(db *gorm.DB, category Category) (Category, Budget, error) {
	// User defined categories are always expense categories
	category.Type = CategoryTypeExpense
	category.IsDefault = false

	var budget Budget
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}

		var err error
		budget, err = UpsertBudget(tx, Budget{Category: category.Value, Amount: decimal.Zero})
		return err
	})
	if err != nil {
		return Category{}, Budget{}, err
	}

	return category, budget, nil
}

// DeleteCategory deletes a category and its budget.
//
// Transactions referencing the category are not touched.
func DeleteCategory(db *gorm.DB, value string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category Category
		err := tx.Where(&Category{Value: value}).First(&category).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&category).Error
		if err != nil {
			return fmt.Errorf("could not delete category %s: %w", value, err)
		}

		return tx.Where(&Budget{Category: value}).Delete(&Budget{}).Error
	})
}
