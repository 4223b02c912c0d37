package controllers

import (
	"net/http"

	"github.com/budgetwise/backend/pkg/httputil"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgets)
	r.GET("", GetBudgets)
	r.POST("", SetBudget)
	r.DELETE("", DeleteBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		List budgets
// @Description	Returns all budgets, ordered by category
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		Budget
// @Failure		500	{object}	httpError
// @Router			/budgets [get]
func GetBudgets(c *gin.Context) {
	var budgets []models.Budget
	if err := models.DB.Order("category ASC").Find(&budgets).Error; err != nil {
		abort(c, err)
		return
	}

	apiResources := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		apiResources = append(apiResources, newBudget(b))
	}

	c.JSON(http.StatusOK, apiResources)
}

// @Summary		Set budget
// @Description	Sets the budget for a category. Creates the budget if there is none for the category yet.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	Budget
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		Budget	true	"Budget"
// @Router			/budgets [post]
func SetBudget(c *gin.Context) {
	var data Budget
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	budget, err := models.UpsertBudget(models.DB, data.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newBudget(budget))
}

// @Summary		Delete budget
// @Description	Deletes the budget for a category
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	httpMessage
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	query		string	true	"Value of the category"
// @Router			/budgets [delete]
func DeleteBudget(c *gin.Context) {
	var query QueryCategory
	_ = c.ShouldBindQuery(&query)

	if query.Category == "" {
		abort(c, errCategoryParameter)
		return
	}

	if err := models.DeleteBudget(models.DB, query.Category); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Budget deleted successfully"})
}
