package models

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedCategory struct {
	Category
	Budget *decimal.Decimal
}

func amount(f int64) *decimal.Decimal {
	d := decimal.NewFromInt(f)
	return &d
}

var defaultCategories = []seedCategory{
	{Category{Value: "housing", Label: "Housing", Icon: "Home", Type: CategoryTypeExpense}, amount(1600)},
	{Category{Value: "transportation", Label: "Transportation", Icon: "Car", Type: CategoryTypeExpense}, amount(200)},
	{Category{Value: "food", Label: "Food", Icon: "Utensils", Type: CategoryTypeExpense}, amount(400)},
	{Category{Value: "groceries", Label: "Groceries", Icon: "ShoppingCart", Type: CategoryTypeExpense}, amount(500)},
	{Category{Value: "health", Label: "Health", Icon: "HeartPulse", Type: CategoryTypeExpense}, amount(150)},
	{Category{Value: "entertainment", Label: "Entertainment", Icon: "Ticket", Type: CategoryTypeExpense}, amount(200)},
	{Category{Value: "education", Label: "Education", Icon: "GraduationCap", Type: CategoryTypeExpense}, amount(250)},
	{Category{Value: "personal", Label: "Personal Care", Icon: "Gift", Type: CategoryTypeExpense}, amount(150)},
	{Category{Value: "other", Label: "Other", Icon: "MoreHorizontal", Type: CategoryTypeExpense}, amount(100)},
	{Category{Value: "salary", Label: "Salary", Icon: "Briefcase", Type: CategoryTypeIncome}, nil},
	{Category{Value: "other-income", Label: "Other Income", Icon: "MoreHorizontal", Type: CategoryTypeIncome}, nil},
}

// Seed inserts the default categories and their budgets if there are
// no categories yet.
func Seed(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, s := range defaultCategories {
			category := s.Category
			category.IsDefault = true

			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			if s.Budget == nil {
				continue
			}

			if err := tx.Create(&Budget{Category: category.Value, Amount: *s.Budget}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("categories", len(defaultCategories)).Msg("seeded default categories")
	return nil
}
