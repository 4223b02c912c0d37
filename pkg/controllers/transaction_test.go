package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/budgetwise/backend/internal/types"
	"github.com/budgetwise/backend/pkg/controllers"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/budgetwise/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transactionsURL = "http://example.com/api/transactions"

func createTestTransaction(t *testing.T, c controllers.TransactionEditable, expectedStatus ...int) controllers.Transaction {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	if c.Type == "" {
		c.Type = models.TransactionTypeExpense
	}

	if c.Name == "" {
		c.Name = "Test transaction"
	}

	r := test.Request(t, http.MethodPost, transactionsURL, c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr controllers.Transaction
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &tr)
	}

	return tr
}

func listTransactions(t *testing.T, query string) []controllers.Transaction {
	r := test.Request(t, http.MethodGet, transactionsURL+query, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var transactions []controllers.Transaction
	test.DecodeResponse(t, &r, &transactions)
	return transactions
}

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, controllers.TransactionEditable{Amount: decimal.NewFromInt(3)}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, transactionsURL, "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, recorder.Body.Bytes()))
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, transactionsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{
		Type:        models.TransactionTypeIncome,
		Category:    "salary",
		Amount:      decimal.NewFromFloat(2500.5),
		Date:        types.NewDate(2024, 1, 31),
		Name:        "  January salary ",
		Description: "Paycheck",
	})

	assert.NotEqual(suite.T(), uuid.Nil, tr.ID)
	assert.Equal(suite.T(), models.TransactionTypeIncome, tr.Type)
	assert.Equal(suite.T(), "salary", tr.Category)
	assert.True(suite.T(), decimal.NewFromFloat(2500.5).Equal(tr.Amount))
	assert.Equal(suite.T(), "2024-01-31", tr.Date.String())
	assert.Equal(suite.T(), "January salary", tr.Name)
	assert.Equal(suite.T(), "Paycheck", tr.Description)
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaultsDate() {
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{Amount: decimal.NewFromInt(4)})
	assert.False(suite.T(), tr.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{"name": "Test"`, http.StatusBadRequest, ""},
		{"Invalid type", `{"type": "transfer", "name": "Test", "amount": 1}`, http.StatusBadRequest, models.ErrTransactionTypeInvalid.Error()},
		{"Negative amount", `{"type": "expense", "name": "Test", "amount": -1}`, http.StatusBadRequest, models.ErrAmountNegative.Error()},
		{"Missing name", `{"type": "expense", "name": "  ", "amount": 1}`, http.StatusBadRequest, models.ErrTransactionNameEmpty.Error()},
		{"Invalid date", `{"type": "expense", "name": "Test", "amount": 1, "date": "yesterday"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, transactionsURL, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListOrder() {
	createTestTransaction(suite.T(), controllers.TransactionEditable{Name: "Old", Date: types.NewDate(2023, 12, 1)})
	createTestTransaction(suite.T(), controllers.TransactionEditable{Name: "New", Date: types.NewDate(2024, 2, 1)})
	createTestTransaction(suite.T(), controllers.TransactionEditable{Name: "Middle", Date: types.NewDate(2024, 1, 1)})

	transactions := listTransactions(suite.T(), "")
	require.Len(suite.T(), transactions, 3)
	assert.Equal(suite.T(), "New", transactions[0].Name)
	assert.Equal(suite.T(), "Middle", transactions[1].Name)
	assert.Equal(suite.T(), "Old", transactions[2].Name)
}

func (suite *TestSuiteStandard) TestTransactionsListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, transactionsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), "[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsFilter() {
	createTestTransaction(suite.T(), controllers.TransactionEditable{
		Type:     models.TransactionTypeIncome,
		Category: "salary",
		Name:     "Salary January",
		Date:     types.NewDate(2024, 1, 31),
	})
	createTestTransaction(suite.T(), controllers.TransactionEditable{
		Category: "food",
		Name:     "Coffee",
		Date:     types.NewDate(2024, 1, 1),
	})
	createTestTransaction(suite.T(), controllers.TransactionEditable{
		Category: "food",
		Name:     "Coffee beans",
		Date:     types.NewDate(2024, 2, 1),
	})
	createTestTransaction(suite.T(), controllers.TransactionEditable{
		Category: "housing",
		Name:     "Rent",
		Date:     types.NewDate(2023, 12, 31),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Type income", "?type=income", 1},
		{"Type expense", "?type=expense", 3},
		{"Category", "?category=food", 2},
		{"Month January", "?month=2024-01", 2},
		{"Month December", "?month=2023-12", 1},
		{"Month without transactions", "?month=2022-06", 0},
		{"Name exact", "?name=rent", 1},
		{"Name glob", "?name=coffee*", 2},
		{"Name glob no match", "?name=*tea*", 0},
		{"Category and month", "?category=food&month=2024-02", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Len(t, listTransactions(t, tt.query), tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid type", "?type=transfer"},
		{"Invalid month", "?month=January"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, transactionsURL+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{
		Category:    "food",
		Amount:      decimal.NewFromInt(12),
		Date:        types.NewDate(2024, 3, 5),
		Name:        "Lunch",
		Description: "With colleagues",
	})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("%s?id=%s", transactionsURL, tr.ID), map[string]any{
		"amount": "0",
		"name":   " Late lunch ",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), tr.ID, updated.ID)
	assert.True(suite.T(), updated.Amount.IsZero(), "amount must be updated to zero, is %s", updated.Amount)
	assert.Equal(suite.T(), "Late lunch", updated.Name)

	// Fields not in the body are kept
	assert.Equal(suite.T(), "food", updated.Category)
	assert.Equal(suite.T(), "2024-03-05", updated.Date.String())
	assert.Equal(suite.T(), "With colleagues", updated.Description)
	assert.Equal(suite.T(), models.TransactionTypeExpense, updated.Type)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{Amount: decimal.NewFromInt(12)})
	url := fmt.Sprintf("%s?id=%s", transactionsURL, tr.ID)

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"No ID", transactionsURL, `{"name": "Test"}`, http.StatusBadRequest},
		{"Invalid ID", transactionsURL + "?id=NotAUUID", `{"name": "Test"}`, http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("%s?id=%s", transactionsURL, uuid.New()), `{"name": "Test"}`, http.StatusNotFound},
		{"Empty body", url, "", http.StatusBadRequest},
		{"Broken body", url, `{"name": 2}`, http.StatusBadRequest},
		{"Negative amount", url, `{"amount": -5}`, http.StatusBadRequest},
		{"Invalid type", url, `{"type": "refund"}`, http.StatusBadRequest},
		{"Empty name", url, `{"name": ""}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// The transaction is unchanged
	transactions := listTransactions(suite.T(), "")
	require.Len(suite.T(), transactions, 1)
	assert.True(suite.T(), decimal.NewFromInt(12).Equal(transactions[0].Amount))
	assert.Equal(suite.T(), "Test transaction", transactions[0].Name)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?id=%s", transactionsURL, tr.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"message": "Transaction deleted successfully"}`, r.Body.String())

	assert.Len(suite.T(), listTransactions(suite.T(), ""), 0)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?id=%s", transactionsURL, tr.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no transaction matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsDeleteWithoutID() {
	r := test.Request(suite.T(), http.MethodDelete, transactionsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), "the id query parameter must be set", test.DecodeError(suite.T(), r.Body.Bytes()))
}
