package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhizvo/Budget-Planner/internal/httputil"
	"github.com/rhizvo/Budget-Planner/internal/models"
)

func RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	if _, err := getExpenseResource(c); err != nil {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense := editable.model()
	if err := models.DB.Create(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &apiResource})
}

// @Summary		List expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			category	query	string	false	"Filter by category"
// @Param			name		query	string	false	"Filter by name"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	var expenses []models.Expense
	err := models.DB.Where(&where, queryFields...).Order("category ASC, name ASC").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getExpenseResource loads the expense referenced in the URI. Errors are
// written to the context.
func getExpenseResource(c *gin.Context) (models.Expense, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Expense{}, err
	}

	var expense models.Expense
	err := models.DB.Where(&models.Expense{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).First(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Expense{}, err
	}

	return expense, nil
}
