package controllers

import (
	"github.com/budgetwise/backend/pkg/models"
)

// CategoryCreate contains the fields needed to create a category.
type CategoryCreate struct {
	Value string `json:"value" example:"pets"`   // Unique slug identifying the category
	Label string `json:"label" example:"Pets"`   // Display name
	Icon  string `json:"icon" example:"Package"` // Symbolic icon name. Defaults to "Package"
}

func (e CategoryCreate) model() models.Category {
	return models.Category{
		Value: e.Value,
		Label: e.Label,
		Icon:  e.Icon,
	}
}

// Category is the API representation of a category.
type Category struct {
	Value     string              `json:"value" example:"groceries"`
	Label     string              `json:"label" example:"Groceries"`
	Icon      string              `json:"icon" example:"ShoppingCart"`
	Type      models.CategoryType `json:"type" example:"expense"`
	IsDefault bool                `json:"isDefault" example:"true"` // Default categories cannot be deleted
}

func newCategory(m models.Category) Category {
	return Category{
		Value:     m.Value,
		Label:     m.Label,
		Icon:      m.Icon,
		Type:      m.Type,
		IsDefault: m.IsDefault,
	}
}

// CategoryCreateResponse contains the created category and its budget.
type CategoryCreateResponse struct {
	NewCategory Category `json:"newCategory"`
	NewBudget   Budget   `json:"newBudget"`
}
