package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhizvo/Budget-Planner/internal/httputil"
	"github.com/rhizvo/Budget-Planner/internal/models"
)

func RegisterSavingsAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSavingsAccounts)
		r.GET("", GetSavingsAccounts)
		r.POST("", CreateSavingsAccount)
	}
	{
		r.OPTIONS("/:id", OptionsSavingsAccountDetail)
		r.GET("/:id", GetSavingsAccount)
		r.PATCH("/:id", UpdateSavingsAccount)
		r.DELETE("/:id", DeleteSavingsAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsAccounts
// @Success		204
// @Router			/v1/savings-accounts [options]
func OptionsSavingsAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-accounts/{id} [options]
func OptionsSavingsAccountDetail(c *gin.Context) {
	if _, err := getSavingsAccountResource(c); err != nil {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create savings account
// @Description	Creates a new savings account
// @Tags			SavingsAccounts
// @Produce		json
// @Success		201		{object}	SavingsAccountResponse
// @Failure		400		{object}	SavingsAccountResponse
// @Failure		404		{object}	SavingsAccountResponse
// @Param			account	body		SavingsAccountEditable	true	"SavingsAccount"
// @Router			/v1/savings-accounts [post]
func CreateSavingsAccount(c *gin.Context) {
	var editable SavingsAccountEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountResponse{Error: &e})
		return
	}

	account := editable.model()
	if err := models.DB.Create(&account).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountResponse{Error: &e})
		return
	}

	apiResource := newSavingsAccount(c, account)
	c.JSON(http.StatusCreated, SavingsAccountResponse{Data: &apiResource})
}

// @Summary		List savings accounts
// @Description	Returns a list of savings accounts
// @Tags			SavingsAccounts
// @Produce		json
// @Success		200	{object}	SavingsAccountListResponse
// @Failure		400	{object}	SavingsAccountListResponse
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			name	query	string	false	"Filter by name"
// @Router			/v1/savings-accounts [get]
func GetSavingsAccounts(c *gin.Context) {
	var filter SavingsAccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SavingsAccountListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	var accounts []models.SavingsAccount
	err := models.DB.Where(&where, queryFields...).Order("name ASC").Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountListResponse{Error: &e})
		return
	}

	data := make([]SavingsAccount, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, newSavingsAccount(c, account))
	}

	c.JSON(http.StatusOK, SavingsAccountListResponse{Data: data})
}

// @Summary		Get savings account
// @Description	Returns a specific savings account
// @Tags			SavingsAccounts
// @Produce		json
// @Success		200	{object}	SavingsAccountResponse
// @Failure		400	{object}	SavingsAccountResponse
// @Failure		404	{object}	SavingsAccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-accounts/{id} [get]
func GetSavingsAccount(c *gin.Context) {
	account, err := getSavingsAccountResource(c)
	if err != nil {
		return
	}

	apiResource := newSavingsAccount(c, account)
	c.JSON(http.StatusOK, SavingsAccountResponse{Data: &apiResource})
}

// @Summary		Update savings account
// @Description	Updates an existing savings account. Only values to be updated need to be specified.
// @Tags			SavingsAccounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsAccountResponse
// @Failure		400		{object}	SavingsAccountResponse
// @Failure		404		{object}	SavingsAccountResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		SavingsAccountEditable	true	"SavingsAccount"
// @Router			/v1/savings-accounts/{id} [patch]
func UpdateSavingsAccount(c *gin.Context) {
	account, err := getSavingsAccountResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsAccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountResponse{Error: &e})
		return
	}

	var editable SavingsAccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountResponse{Error: &e})
		return
	}

	err = models.DB.Model(&account).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsAccountResponse{Error: &e})
		return
	}

	apiResource := newSavingsAccount(c, account)
	c.JSON(http.StatusOK, SavingsAccountResponse{Data: &apiResource})
}

// @Summary		Delete savings account
// @Description	Deletes a savings account and all savings transfers into it
// @Tags			SavingsAccounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-accounts/{id} [delete]
func DeleteSavingsAccount(c *gin.Context) {
	account, err := getSavingsAccountResource(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&account).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getSavingsAccountResource loads the savings account referenced in the
// URI. Errors are written to the context.
func getSavingsAccountResource(c *gin.Context) (models.SavingsAccount, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.SavingsAccount{}, err
	}

	var account models.SavingsAccount
	err := models.DB.Where(&models.SavingsAccount{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).First(&account).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.SavingsAccount{}, err
	}

	return account, nil
}
