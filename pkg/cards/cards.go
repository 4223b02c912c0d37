// Package cards is a client for the credit card service that tracks card
// balances and their history.
package cards

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/budgetwise/backend/internal/rest"
	"github.com/shopspring/decimal"
)

// DefaultURL is the address of a locally running card service.
const DefaultURL = "http://localhost:8080"

var (
	ErrCardNameTooShort       = errors.New("card name must be at least 2 characters")
	ErrCreditLimitNotPositive = errors.New("credit limit must be positive")
	ErrBalanceNegative        = errors.New("balance must be non-negative")
)

type Card struct {
	ID             int64           `json:"id"`
	CardName       string          `json:"cardName"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// Utilization returns the share of the credit limit in use, between 0 and 1
// for cards within their limit.
func (c Card) Utilization() decimal.Decimal {
	if !c.CreditLimit.IsPositive() {
		return decimal.Zero
	}
	return c.CurrentBalance.Div(c.CreditLimit)
}

// CardRequest creates a card or updates the card with the same name.
type CardRequest struct {
	CardName       string          `json:"cardName"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// Validate checks the request before it is sent.
func (r CardRequest) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(r.CardName)) < 2 {
		return ErrCardNameTooShort
	}

	if !r.CreditLimit.IsPositive() {
		return ErrCreditLimitNotPositive
	}

	if r.CurrentBalance.IsNegative() {
		return ErrBalanceNegative
	}

	return nil
}

// BalanceHistory is the balance of a card at one point in time.
type BalanceHistory struct {
	ID         int64           `json:"id"`
	CardID     int64           `json:"cardId"`
	Balance    decimal.Decimal `json:"balance"`
	RecordedAt time.Time       `json:"recordedAt"`
}

type HealthCheck struct {
	Status string `json:"status"`
}

type Client struct {
	rest *rest.Client
}

// New creates a client for the card service at baseURL.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	r, err := rest.NewClient(baseURL, timeout)
	if err != nil {
		return nil, err
	}

	return &Client{rest: r}, nil
}

func (c *Client) Cards(ctx context.Context) ([]Card, error) {
	var cards []Card
	if err := c.rest.Do(ctx, http.MethodGet, "/api/card", nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) AddCard(ctx context.Context, req CardRequest) (Card, error) {
	if err := req.Validate(); err != nil {
		return Card{}, err
	}

	var card Card
	err := c.rest.Do(ctx, http.MethodPost, "/api/card/add", nil, req, &card)
	return card, err
}

// UpdateCard sets limit and balance of the card named in the request.
func (c *Client) UpdateCard(ctx context.Context, req CardRequest) (Card, error) {
	if err := req.Validate(); err != nil {
		return Card{}, err
	}

	var card Card
	err := c.rest.Do(ctx, http.MethodPut, "/api/card/update", nil, req, &card)
	return card, err
}

func (c *Client) DeleteCard(ctx context.Context, id int64) error {
	return c.rest.Do(ctx, http.MethodDelete, "/api/card/delete", nil, id, nil)
}

// History returns the recorded balances of a card.
func (c *Client) History(ctx context.Context, cardID int64) ([]BalanceHistory, error) {
	query := url.Values{"cardId": {strconv.FormatInt(cardID, 10)}}

	var history []BalanceHistory
	if err := c.rest.Do(ctx, http.MethodGet, "/api/card-history", query, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) Status(ctx context.Context) (HealthCheck, error) {
	var status HealthCheck
	err := c.rest.Do(ctx, http.MethodGet, "/api/home/status", nil, nil, &status)
	return status, err
}
