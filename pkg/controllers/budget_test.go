package controllers_test

import (
	"net/http"
	"testing"

	"github.com/budgetwise/backend/pkg/controllers"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/budgetwise/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const budgetsURL = "http://example.com/api/budgets"

func setTestBudget(t *testing.T, b controllers.Budget, expectedStatus ...int) controllers.Budget {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, budgetsURL, b)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var budget controllers.Budget
	if r.Code == http.StatusOK {
		test.DecodeResponse(t, &r, &budget)
	}

	return budget
}

func listBudgets(t *testing.T) []controllers.Budget {
	r := test.Request(t, http.MethodGet, budgetsURL, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var budgets []controllers.Budget
	test.DecodeResponse(t, &r, &budgets)
	return budgets
}

func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, budgetsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, budgetsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	budgets := listBudgets(suite.T())
	require.Len(suite.T(), budgets, 9)

	// Ordered by category
	assert.Equal(suite.T(), "education", budgets[0].Category)
	assert.Equal(suite.T(), "transportation", budgets[len(budgets)-1].Category)

	for _, b := range budgets {
		if b.Category == "housing" {
			assert.True(suite.T(), decimal.NewFromInt(1600).Equal(b.Amount))
		}
	}
}

func (suite *TestSuiteStandard) TestBudgetsSetExisting() {
	budget := setTestBudget(suite.T(), controllers.Budget{Category: "food", Amount: decimal.NewFromFloat(450.25)})
	assert.Equal(suite.T(), "food", budget.Category)
	assert.True(suite.T(), decimal.NewFromFloat(450.25).Equal(budget.Amount))

	// No new budget is created
	assert.Len(suite.T(), listBudgets(suite.T()), 9)
}

func (suite *TestSuiteStandard) TestBudgetsSetNew() {
	budget := setTestBudget(suite.T(), controllers.Budget{Category: "travel", Amount: decimal.NewFromInt(300)})
	assert.Equal(suite.T(), "travel", budget.Category)

	budgets := listBudgets(suite.T())
	assert.Len(suite.T(), budgets, 10)
	assert.Contains(suite.T(), budgets, budget)
}

func (suite *TestSuiteStandard) TestBudgetsSetZero() {
	budget := setTestBudget(suite.T(), controllers.Budget{Category: "food", Amount: decimal.Zero})
	assert.True(suite.T(), budget.Amount.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetsSetFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"No category", `{"amount": 20}`, models.ErrBudgetCategoryEmpty.Error()},
		{"Negative amount", `{"category": "food", "amount": -20}`, models.ErrAmountNegative.Error()},
		{"Broken JSON", `{"category": "food"`, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, budgetsURL, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != "" {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	r := test.Request(suite.T(), http.MethodDelete, budgetsURL+"?category=food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"message": "Budget deleted successfully"}`, r.Body.String())
	assert.Len(suite.T(), listBudgets(suite.T()), 8)

	// The category is kept
	r = test.Request(suite.T(), http.MethodGet, categoriesURL+"/food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteFails() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No category", "", http.StatusBadRequest},
		{"Empty category", "?category=", http.StatusBadRequest},
		{"No budget for category", "?category=salary", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, budgetsURL+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
