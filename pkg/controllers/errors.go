package controllers

import (
	"errors"
	"net/http"

	"github.com/budgetwise/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"the id query parameter must be set"`
}

type httpMessage struct {
	Message string `json:"message" example:"Transaction deleted successfully"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// abort writes the error response for err.
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(status(err), httpError{
		Error: err.Error(),
	})
}

var (
	errIDParameter       = errors.New("the id query parameter must be set")
	errCategoryParameter = errors.New("the category query parameter must be set")
	errCategoryRequired  = errors.New("value and label are required")
)

// Recommendation errors
var (
	errGoalsTooShort         = errors.New("the financial goals must be at least 10 characters long")
	errAdvisorNotConfigured  = errors.New("recommendations are not available, no AI provider is configured")
	errRecommendationsFailed = errors.New("failed to generate recommendations, please try again later")
)
