package controllers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/budgetwise/backend/pkg/advisor"
	"github.com/budgetwise/backend/pkg/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// minGoalsLength is the minimum number of characters for the financial goals.
const minGoalsLength = 10

// RegisterRecommendationRoutes registers the routes for recommendations with
// the RouterGroup that is passed. adv may be nil, recommendations are
// unavailable then.
func RegisterRecommendationRoutes(r *gin.RouterGroup, adv advisor.Advisor) {
	r.OPTIONS("", OptionsRecommendations)
	r.POST("", CreateRecommendations(adv))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recommendations
// @Success		204
// @Router			/recommendations [options]
func OptionsRecommendations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CreateRecommendations returns the handler generating recommendations with adv.
//
// @Summary		Get recommendations
// @Description	Generates budget recommendations for the income, expenses and financial goals
// @Tags			Recommendations
// @Accept			json
// @Produce		json
// @Success		200		{object}	advisor.Response
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Failure		503		{object}	httpError
// @Param			request	body		advisor.Request	true	"Financial situation"
// @Router			/recommendations [post]
func CreateRecommendations(adv advisor.Advisor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req advisor.Request
		if err := httputil.BindData(c, &req); err != nil {
			abort(c, err)
			return
		}

		req.FinancialGoals = strings.TrimSpace(req.FinancialGoals)
		if utf8.RuneCountInString(req.FinancialGoals) < minGoalsLength {
			abort(c, errGoalsTooShort)
			return
		}

		if adv == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, httpError{Error: errAdvisorNotConfigured.Error()})
			return
		}

		response, err := adv.Recommend(c.Request.Context(), req)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("generating recommendations failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{Error: errRecommendationsFailed.Error()})
			return
		}

		if response.Recommendations == nil {
			response.Recommendations = []advisor.Recommendation{}
		}

		c.JSON(http.StatusOK, response)
	}
}
