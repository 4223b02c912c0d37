package controllers

import (
	"github.com/budgetwise/backend/pkg/models"
	"github.com/google/uuid"
)

// getResourceByID gets a resource of a specified type by its ID.
//
// When no resource exists for the specified ID, the returned error
// wraps models.ErrResourceNotFound.
func getResourceByID[T any](id uuid.UUID) (resource T, err error) {
	err = models.DB.Where(map[string]any{"id": id}).First(&resource).Error
	return
}

func getTransaction(id uuid.UUID) (models.Transaction, error) {
	return getResourceByID[models.Transaction](id)
}

func getCategory(value string) (category models.Category, err error) {
	err = models.DB.Where(&models.Category{Value: value}).First(&category).Error
	return
}
