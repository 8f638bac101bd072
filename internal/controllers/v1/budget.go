package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rhizvo/Budget-Planner/internal/calendar"
	"github.com/rhizvo/Budget-Planner/internal/forecast"
	"github.com/rhizvo/Budget-Planner/internal/httputil"
	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/report"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
	{
		r.OPTIONS("/:id/recalculate", OptionsBudgetRecalculate)
		r.POST("/:id/recalculate", RecalculateBudget)
		r.OPTIONS("/:id/forecast", OptionsBudgetForecast)
		r.GET("/:id/forecast", GetBudgetForecast)
		r.OPTIONS("/:id/forecast/csv", OptionsBudgetForecast)
		r.GET("/:id/forecast/csv", GetBudgetForecastCSV)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := getBudgetResource(c, uri); err != nil {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{id}/recalculate [options]
func OptionsBudgetRecalculate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{id}/forecast [options]
func OptionsBudgetForecast(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create budget
// @Description	Creates a new budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget := editable.model()
	if err := models.DB.Create(&budget).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &apiResource})
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	var budgets []models.Budget
	err := models.DB.Where(&where, queryFields...).Order("name ASC").Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := getBudgetResource(c, uri)
	if err != nil {
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := getBudgetResource(c, uri)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	apiResource := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := getBudgetResource(c, uri)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&budget).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

type RecalculateQuery struct {
	AsOf string `form:"asOf" example:"2026-03-01"` // Drop occurrences before this date. Defaults to keeping all.
}

// @Summary		Recalculate schedules
// @Description	Regenerates the occurrence dates of every item of the budget from its frequency and anchor, applies holiday adjustment to pay dates and replaces the pro-rated final paycheck entry if the income expires.
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			asOf	query		string	false	"Drop occurrences before this date (YYYY-MM-DD)"
// @Router			/v1/budgets/{id}/recalculate [post]
func RecalculateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := getBudgetResource(c, uri)
	if err != nil {
		return
	}

	var query RecalculateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var asOf types.Date
	if query.AsOf != "" {
		asOf, err = types.ParseDate(query.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: errInvalidAsOf.Error()})
			return
		}
	}

	holidays, err := calendar.LoadHolidays(holidayDir(), budget.StartDate, budget.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = models.RecalculateSchedules(models.DB, budget.ID, holidays, asOf)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get forecast
// @Description	Returns the weekly cash-flow projection of the budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	ForecastResponse
// @Failure		400	{object}	ForecastResponse
// @Failure		404	{object}	ForecastResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/forecast [get]
func GetBudgetForecast(c *gin.Context) {
	rows, ok := projectBudget(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Data: rows})
}

// @Summary		Get forecast CSV
// @Description	Returns the weekly cash-flow projection of the budget as a CSV report
// @Tags			Budgets
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id}/forecast/csv [get]
func GetBudgetForecastCSV(c *gin.Context) {
	rows, ok := projectBudget(c)
	if !ok {
		return
	}

	c.Header("content-disposition", `attachment; filename="budget_plan.csv"`)
	c.Header("content-type", "text/csv")
	c.Status(http.StatusOK)

	if err := report.WriteCSV(c.Writer, rows); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
	}
}

type ForecastResponse struct {
	Data  []forecast.WeekRow `json:"data"`                                                          // The weekly projection rows
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// projectBudget loads the budget aggregate from the URI and projects it.
// Errors are written to the context; the bool reports success.
func projectBudget(c *gin.Context) ([]forecast.WeekRow, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return nil, false
	}

	data, err := models.LoadBudgetData(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return nil, false
	}

	return forecast.Project(data), true
}

// getBudgetResource loads the budget referenced in the URI. Errors are
// written to the context.
func getBudgetResource(c *gin.Context, uri URIID) (models.Budget, error) {
	var budget models.Budget

	err := models.DB.Where(&models.Budget{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).First(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Budget{}, err
	}

	return budget, nil
}

// holidayDir returns the directory holiday files are read from.
func holidayDir() string {
	if dir, ok := os.LookupEnv("HOLIDAY_DIR"); ok {
		return dir
	}

	return "data/holidays"
}
