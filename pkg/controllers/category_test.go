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

const categoriesURL = "http://example.com/api/categories"

func createTestCategory(t *testing.T, c controllers.CategoryCreate, expectedStatus ...int) controllers.CategoryCreateResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, categoriesURL, c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response controllers.CategoryCreateResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &response)
	}

	return response
}

func listCategories(t *testing.T) []controllers.Category {
	r := test.Request(t, http.MethodGet, categoriesURL, "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var categories []controllers.Category
	test.DecodeResponse(t, &r, &categories)
	return categories
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	categories := listCategories(suite.T())
	require.Len(suite.T(), categories, 11)

	// Expense categories first, ordered by label
	assert.Equal(suite.T(), "education", categories[0].Value)
	assert.Equal(suite.T(), models.CategoryTypeExpense, categories[0].Type)
	assert.Equal(suite.T(), "other-income", categories[9].Value)
	assert.Equal(suite.T(), "salary", categories[10].Value)

	for _, c := range categories {
		assert.True(suite.T(), c.IsDefault, "%s must be a default category", c.Value)
	}
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"Collection", categoriesURL, http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Existing category", categoriesURL + "/food", http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{"Unknown category", categoriesURL + "/pets", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	response := createTestCategory(suite.T(), controllers.CategoryCreate{
		Value: "pets",
		Label: "Pets",
		Icon:  "Dog",
	})

	assert.Equal(suite.T(), controllers.Category{
		Value:     "pets",
		Label:     "Pets",
		Icon:      "Dog",
		Type:      models.CategoryTypeExpense,
		IsDefault: false,
	}, response.NewCategory)
	assert.Equal(suite.T(), "pets", response.NewBudget.Category)
	assert.True(suite.T(), response.NewBudget.Amount.IsZero())

	assert.Len(suite.T(), listCategories(suite.T()), 12)
	assert.Contains(suite.T(), listBudgets(suite.T()), response.NewBudget)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDefaultIcon() {
	response := createTestCategory(suite.T(), controllers.CategoryCreate{Value: "pets", Label: "Pets"})
	assert.Equal(suite.T(), models.DefaultIcon, response.NewCategory.Icon)
}

func (suite *TestSuiteStandard) TestCategoriesCreateResetsBudget() {
	setTestBudget(suite.T(), controllers.Budget{Category: "pets", Amount: decimal.NewFromInt(80)})

	response := createTestCategory(suite.T(), controllers.CategoryCreate{Value: "pets", Label: "Pets"})
	assert.True(suite.T(), response.NewBudget.Amount.IsZero())

	var pets []controllers.Budget
	for _, b := range listBudgets(suite.T()) {
		if b.Category == "pets" {
			pets = append(pets, b)
		}
	}
	if assert.Len(suite.T(), pets, 1) {
		assert.True(suite.T(), pets[0].Amount.IsZero())
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"No value", `{"label": "Pets"}`, "value and label are required"},
		{"No label", `{"value": "pets"}`, "value and label are required"},
		{"Whitespace label", `{"value": "pets", "label": "  "}`, "value and label are required"},
		{"Value not a slug", `{"value": "My Pets", "label": "Pets"}`, models.ErrCategoryValueInvalid.Error()},
		{"Duplicate value", `{"value": "food", "label": "Food again"}`, models.ErrCategoryValueNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, categoriesURL, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}

	assert.Len(suite.T(), listCategories(suite.T()), 11)
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.T(), http.MethodGet, categoriesURL+"/groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category controllers.Category
	test.DecodeResponse(suite.T(), &r, &category)
	assert.Equal(suite.T(), "Groceries", category.Label)
	assert.Equal(suite.T(), "ShoppingCart", category.Icon)

	r = test.Request(suite.T(), http.MethodGet, categoriesURL+"/pets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	createTestCategory(suite.T(), controllers.CategoryCreate{Value: "pets", Label: "Pets"})
	tr := createTestTransaction(suite.T(), controllers.TransactionEditable{Category: "pets", Name: "Cat food"})

	r := test.Request(suite.T(), http.MethodDelete, categoriesURL+"/pets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"message": "Category deleted successfully"}`, r.Body.String())

	assert.Len(suite.T(), listCategories(suite.T()), 11)
	for _, b := range listBudgets(suite.T()) {
		assert.NotEqual(suite.T(), "pets", b.Category)
	}

	// Transactions in the category are kept
	transactions := listTransactions(suite.T(), "?category=pets")
	require.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), tr.ID, transactions[0].ID)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteFails() {
	tests := []struct {
		name   string
		value  string
		status int
		err    string
	}{
		{"Default category", "food", http.StatusBadRequest, "cannot delete default category"},
		{"Unknown category", "pets", http.StatusNotFound, "there is no category matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, categoriesURL+"/"+tt.value, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}

	// Default category and its budget are untouched
	assert.Len(suite.T(), listCategories(suite.T()), 11)
	assert.Len(suite.T(), listBudgets(suite.T()), 9)
}
