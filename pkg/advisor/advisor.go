// Package advisor generates budget recommendations with a large language model.
package advisor

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Advisor generates budget recommendations.
type Advisor interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

// Request contains the financial situation of the user.
type Request struct {
	Income         decimal.Decimal            `json:"income" example:"4200"`                                    // Monthly income
	Expenses       map[string]decimal.Decimal `json:"expenses"`                                                 // Expenses per category
	FinancialGoals string                     `json:"financialGoals" example:"Save for a house in three years"` // Free text goals
}

// Recommendation is a single piece of advice for one category.
type Recommendation struct {
	Category       string `json:"category" example:"food"`                              // The category the recommendation applies to
	Recommendation string `json:"recommendation" example:"Cook at home twice a week"`   // What to change
	Impact         string `json:"impact" example:"Saves about 120 per month for your goal"` // The expected effect
}

// Response is the list of recommendations for a request.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
}

var (
	ErrAPIKeyMissing  = errors.New("an API key is required for the AI provider")
	ErrNoChoices      = errors.New("no completion choices returned")
	ErrInvalidContent = errors.New("the AI provider returned content that is not a valid recommendation list")
)
