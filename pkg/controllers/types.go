package controllers

import (
	"github.com/budgetwise/backend/internal/uuid"
)

type QueryID struct {
	ID uuid.UUID `form:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the resource
}

type QueryCategory struct {
	Category string `form:"category" example:"food"` // Value of the category
}
