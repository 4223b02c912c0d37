package controllers

import (
	"net/http"
	"strings"

	"github.com/budgetwise/backend/pkg/httputil"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with value
	{
		r.OPTIONS("/:value", OptionsCategoryDetail)
		r.GET("/:value", GetCategory)
		r.DELETE("/:value", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		404		{object}	httpError
// @Param			value	path		string	true	"Value of the category"
// @Router			/categories/{value} [options]
func OptionsCategoryDetail(c *gin.Context) {
	if _, err := getCategory(c.Param("value")); err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		List categories
// @Description	Returns all categories, ordered by type and label
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		Category
// @Failure		500	{object}	httpError
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := models.DB.Order("type ASC, label ASC").Find(&categories).Error; err != nil {
		abort(c, err)
		return
	}

	apiResources := make([]Category, 0, len(categories))
	for _, category := range categories {
		apiResources = append(apiResources, newCategory(category))
	}

	c.JSON(http.StatusOK, apiResources)
}

// @Summary		Create category
// @Description	Creates a new expense category together with a budget of 0 for it
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/categories [post]
func CreateCategory(c *gin.Context) {
	var data CategoryCreate
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	if strings.TrimSpace(data.Value) == "" || strings.TrimSpace(data.Label) == "" {
		abort(c, errCategoryRequired)
		return
	}

	category, budget, err := models.CreateCategory(models.DB, data.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryCreateResponse{
		NewCategory: newCategory(category),
		NewBudget:   newBudget(budget),
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	Category
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			value	path		string	true	"Value of the category"
// @Router			/categories/{value} [get]
func GetCategory(c *gin.Context) {
	category, err := getCategory(c.Param("value"))
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

// @Summary		Delete category
// @Description	Deletes a category and its budget. Default categories cannot be deleted. Transactions in the category are kept.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	httpMessage
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			value	path		string	true	"Value of the category"
// @Router			/categories/{value} [delete]
func DeleteCategory(c *gin.Context) {
	if err := models.DeleteCategory(models.DB, c.Param("value")); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Category deleted successfully"})
}
