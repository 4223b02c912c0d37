package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is a person using BudgetWise.
//
// The table is part of the schema, but no endpoint reads or writes it.
type User struct {
	DefaultModel
	Email string `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane Doe"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	return nil
}
