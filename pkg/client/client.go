// Package client is a typed client for the BudgetWise API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/budgetwise/backend/internal/rest"
	"github.com/google/uuid"
)

// APIError is returned for all error responses of the API.
type APIError = rest.APIError

// Errors matched by APIError with errors.Is.
var (
	ErrBadRequest = rest.ErrBadRequest
	ErrNotFound   = rest.ErrNotFound
	ErrServer     = rest.ErrServer
)

type Client struct {
	rest *rest.Client
}

// New creates a client for the API at apiURL, e.g. "http://localhost:3000/api".
func New(apiURL string, timeout time.Duration) (*Client, error) {
	r, err := rest.NewClient(apiURL, timeout)
	if err != nil {
		return nil, err
	}

	return &Client{rest: r}, nil
}

// Transactions returns the transactions matching the filter, newest first.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	if !filter.Month.IsZero() {
		query.Set("month", filter.Month.String())
	}

	if filter.Name != "" {
		query.Set("name", filter.Name)
	}

	var transactions []Transaction
	if err := c.rest.Do(ctx, http.MethodGet, "/transactions", query, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, t TransactionEditable) (Transaction, error) {
	var created Transaction
	err := c.rest.Do(ctx, http.MethodPost, "/transactions", nil, t, &created)
	return created, err
}

// UpdateTransaction changes the fields of the transaction that are set in patch.
func (c *Client) UpdateTransaction(ctx context.Context, id uuid.UUID, patch TransactionPatch) (Transaction, error) {
	var updated Transaction
	err := c.rest.Do(ctx, http.MethodPut, "/transactions", idQuery(id), patch, &updated)
	return updated, err
}

func (c *Client) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return c.rest.Do(ctx, http.MethodDelete, "/transactions", idQuery(id), nil, &message{})
}

func (c *Client) Budgets(ctx context.Context) ([]Budget, error) {
	var budgets []Budget
	if err := c.rest.Do(ctx, http.MethodGet, "/budgets", nil, nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// UpsertBudget sets the budget for its category, creating it if needed.
func (c *Client) UpsertBudget(ctx context.Context, b Budget) (Budget, error) {
	var stored Budget
	err := c.rest.Do(ctx, http.MethodPost, "/budgets", nil, b, &stored)
	return stored, err
}

func (c *Client) DeleteBudget(ctx context.Context, category string) error {
	return c.rest.Do(ctx, http.MethodDelete, "/budgets", url.Values{"category": {category}}, nil, &message{})
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.rest.Do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates an expense category. The response contains its budget.
func (c *Client) CreateCategory(ctx context.Context, category CategoryCreate) (CategoryCreateResponse, error) {
	var created CategoryCreateResponse
	err := c.rest.Do(ctx, http.MethodPost, "/categories", nil, category, &created)
	return created, err
}

func (c *Client) DeleteCategory(ctx context.Context, value string) error {
	return c.rest.Do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(value), nil, nil, &message{})
}

func (c *Client) Recommend(ctx context.Context, req RecommendationRequest) (RecommendationResponse, error) {
	var response RecommendationResponse
	err := c.rest.Do(ctx, http.MethodPost, "/recommendations", nil, req, &response)
	return response, err
}

func idQuery(id uuid.UUID) url.Values {
	return url.Values{"id": {id.String()}}
}

func (c *Client) String() string {
	return fmt.Sprintf("BudgetWise API at %s", c.rest.BaseURL())
}
