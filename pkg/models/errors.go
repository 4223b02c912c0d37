package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAmountNegative          = errors.New("the amount must not be negative")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrTransactionNameEmpty    = errors.New("the transaction name must not be empty")
	ErrBudgetCategoryEmpty     = errors.New("the budget category must not be empty")
	ErrBudgetCategoryNotUnique = errors.New("there already is a budget for this category")
	ErrCategoryValueInvalid    = errors.New("the category value must consist of lowercase letters, digits and single dashes")
	ErrCategoryLabelEmpty      = errors.New("the category label must not be empty")
	ErrCategoryValueNotUnique  = errors.New("a category with this value already exists")
	ErrCategoryTypeInvalid     = errors.New("the category type must be one of 'income' or 'expense'")
	ErrCategoryIsDefault       = errors.New("cannot delete default category")
	ErrUserEmailNotUnique      = errors.New("a user with this email address already exists")
)
