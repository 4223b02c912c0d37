package models_test

import (
	"testing"
	"time"

	"github.com/budgetwise/backend/internal/types"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	transaction := models.Transaction{
		Type:        models.TransactionTypeExpense,
		Category:    " food ",
		Amount:      decimal.NewFromFloat(12.5),
		Date:        types.NewDate(2024, 1, 15),
		Name:        "\t Lunch  ",
		Description: " with colleagues  ",
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	suite.Assert().Equal("Lunch", transaction.Name)
	suite.Assert().Equal("with colleagues", transaction.Description)
	suite.Assert().Equal("food", transaction.Category)
}

func (suite *TestSuiteStandard) TestTransactionDefaultDate() {
	transaction := models.Transaction{
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(3000),
		Name:   "Salary",
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().Equal(types.DateOf(time.Now().UTC()), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateRoundTrip() {
	transaction := models.Transaction{
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(20),
		Date:   types.NewDate(2023, 12, 31),
		Name:   "New Year's Eve",
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	var stored models.Transaction
	suite.Require().Nil(models.DB.Where(&models.Transaction{DefaultModel: models.DefaultModel{ID: transaction.ID}}).First(&stored).Error)
	suite.Assert().Equal(types.NewDate(2023, 12, 31), stored.Date)
	suite.Assert().True(stored.Amount.Equal(decimal.NewFromInt(20)))
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Invalid type", models.Transaction{Type: "transfer", Name: "x"}, models.ErrTransactionTypeInvalid},
		{"Negative amount", models.Transaction{Type: models.TransactionTypeExpense, Name: "x", Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Empty name", models.Transaction{Type: models.TransactionTypeExpense, Name: "  "}, models.ErrTransactionNameEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
