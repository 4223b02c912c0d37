package models_test

import (
	"github.com/budgetwise/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	category, budget, err := models.CreateCategory(models.DB, models.Category{
		Value:     "pets",
		Label:     "Pets",
		Type:      models.CategoryTypeIncome,
		IsDefault: true,
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(models.CategoryTypeExpense, category.Type, "user defined categories are expense categories")
	suite.Assert().False(category.IsDefault)
	suite.Assert().Equal(models.DefaultIcon, category.Icon)
	suite.Assert().Equal("pets", budget.Category)
	suite.Assert().True(budget.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestCreateCategoryResetsExistingBudget() {
	_, err := models.UpsertBudget(models.DB, models.Budget{Category: "pets", Amount: decimal.NewFromInt(80)})
	suite.Require().Nil(err)

	_, budget, err := models.CreateCategory(models.DB, models.Category{Value: "pets", Label: "Pets"})
	suite.Require().Nil(err)
	suite.Assert().True(budget.Amount.IsZero(), "budget must be reset to zero, is %s", budget.Amount)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where(&models.Budget{Category: "pets"}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicate() {
	_, _, err := models.CreateCategory(models.DB, models.Category{Value: "food", Label: "Food again"})
	suite.Assert().ErrorIs(err, models.ErrCategoryValueNotUnique)
}

func (suite *TestSuiteStandard) TestCreateCategoryValidation() {
	tests := []struct {
		category models.Category
		err      error
	}{
		{models.Category{Value: "Pets", Label: "Pets"}, models.ErrCategoryValueInvalid},
		{models.Category{Value: "pets--cats", Label: "Pets"}, models.ErrCategoryValueInvalid},
		{models.Category{Value: "", Label: "Pets"}, models.ErrCategoryValueInvalid},
		{models.Category{Value: "pets", Label: " "}, models.ErrCategoryLabelEmpty},
	}

	for _, tt := range tests {
		_, _, err := models.CreateCategory(models.DB, tt.category)
		suite.Assert().ErrorIs(err, tt.err, "category value %q", tt.category.Value)
	}

	// Nothing must have been written by the failed creations
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Count(&count).Error)
	suite.Assert().Equal(int64(9), count)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	_, _, err := models.CreateCategory(models.DB, models.Category{Value: "pets", Label: "Pets"})
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteCategory(models.DB, "pets"))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where(&models.Budget{Category: "pets"}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)

	// The value can be used again after deletion
	_, _, err = models.CreateCategory(models.DB, models.Category{Value: "pets", Label: "Pets"})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDeleteDefaultCategory() {
	err := models.DeleteCategory(models.DB, "housing")
	suite.Assert().ErrorIs(err, models.ErrCategoryIsDefault)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Budget{}).Where(&models.Budget{Category: "housing"}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestDeleteCategoryNotFound() {
	err := models.DeleteCategory(models.DB, "nope")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
