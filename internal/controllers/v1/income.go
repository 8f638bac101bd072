package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhizvo/Budget-Planner/internal/httputil"
	"github.com/rhizvo/Budget-Planner/internal/models"
)

func RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncome)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	if _, err := getIncomeResource(c); err != nil {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create income
// @Description	Creates the income stream of a budget. A budget has at most one.
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	income := editable.model()
	if err := models.DB.Create(&income).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusCreated, IncomeResponse{Data: &apiResource})
}

// @Summary		List incomes
// @Description	Returns a list of incomes
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	var incomes []models.Income
	err := models.DB.Where(&where, queryFields...).Order("name ASC").Find(&incomes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{Error: &e})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: data})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	income, err := getIncomeResource(c)
	if err != nil {
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	income, err := getIncomeResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &e})
		return
	}

	apiResource := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &apiResource})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	income, err := getIncomeResource(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&income).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getIncomeResource loads the income referenced in the URI. Errors are
// written to the context.
func getIncomeResource(c *gin.Context) (models.Income, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Income{}, err
	}

	var income models.Income
	err := models.DB.Where(&models.Income{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).First(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.Income{}, err
	}

	return income, nil
}
