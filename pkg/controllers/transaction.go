package controllers

import (
	"net/http"
	"strings"

	"github.com/budgetwise/backend/internal/uuid"
	"github.com/budgetwise/backend/pkg/httputil"
	"github.com/budgetwise/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactions)
	r.GET("", GetTransactions)
	r.POST("", CreateTransaction)
	r.PUT("", UpdateTransaction)
	r.DELETE("", DeleteTransaction)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPostPutDelete(c)
}

// @Summary		List transactions
// @Description	Returns all transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			type		query		string	false	"Filter by type"
// @Param			category	query		string	false	"Filter by category"
// @Param			month		query		string	false	"Filter by month, YYYY-MM"
// @Param			name		query		string	false	"Glob pattern for the name"
// @Router			/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := httputil.BindQuery(c, &filter); err != nil {
		abort(c, err)
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Type") && !filter.Type.Valid() {
		abort(c, models.ErrTransactionTypeInvalid)
		return
	}

	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(filter.model(), queryFields...)

	if !filter.Month.IsZero() {
		q = q.Where("date(transactions.date) >= date(?) AND date(transactions.date) <= date(?)", filter.Month.FirstDay(), filter.Month.LastDay())
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		abort(c, err)
		return
	}

	pattern := strings.ToLower(filter.Name)
	apiResources := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if pattern != "" && !glob.Glob(pattern, strings.ToLower(t.Name)) {
			continue
		}

		apiResources = append(apiResources, newTransaction(t))
	}

	c.JSON(http.StatusOK, apiResources)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	transaction := editable.model()
	if err := models.DB.Create(&transaction).Error; err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransaction(transaction))
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	Transaction
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			query		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/transactions [put]
func UpdateTransaction(c *gin.Context) {
	transaction, err := transactionFromQuery(c)
	if err != nil {
		abort(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	// Binding onto the current values keeps all fields not in the body
	editable := newTransaction(transaction).TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		abort(c, err)
		return
	}

	update := editable.model()
	update.Normalize()
	if err := update.Validate(); err != nil {
		abort(c, err)
		return
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(update).Error
	if err != nil {
		abort(c, err)
		return
	}

	transaction, err = getTransaction(transaction.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransaction(transaction))
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	httpMessage
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	query		string	true	"ID formatted as string"
// @Router			/transactions [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := transactionFromQuery(c)
	if err != nil {
		abort(c, err)
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, httpMessage{Message: "Transaction deleted successfully"})
}

// transactionFromQuery returns the transaction identified by the id query parameter.
func transactionFromQuery(c *gin.Context) (models.Transaction, error) {
	var query QueryID
	if err := c.ShouldBindQuery(&query); err != nil {
		return models.Transaction{}, httputil.ErrInvalidUUID
	}

	if query.ID == uuid.Nil {
		return models.Transaction{}, errIDParameter
	}

	return getTransaction(query.ID.UUID)
}
