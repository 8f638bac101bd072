package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rhizvo/Budget-Planner/internal/httputil"
	"github.com/rhizvo/Budget-Planner/internal/models"
)

func RegisterSavingsTransferRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSavingsTransfers)
		r.GET("", GetSavingsTransfers)
		r.POST("", CreateSavingsTransfer)
	}
	{
		r.OPTIONS("/:id", OptionsSavingsTransferDetail)
		r.GET("/:id", GetSavingsTransfer)
		r.PATCH("/:id", UpdateSavingsTransfer)
		r.DELETE("/:id", DeleteSavingsTransfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsTransfers
// @Success		204
// @Router			/v1/savings-transfers [options]
func OptionsSavingsTransfers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsTransfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-transfers/{id} [options]
func OptionsSavingsTransferDetail(c *gin.Context) {
	if _, err := getSavingsTransferResource(c); err != nil {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create savings transfer
// @Description	Creates a new savings transfer
// @Tags			SavingsTransfers
// @Produce		json
// @Success		201			{object}	SavingsTransferResponse
// @Failure		400			{object}	SavingsTransferResponse
// @Failure		404			{object}	SavingsTransferResponse
// @Param			transfer	body		SavingsTransferEditable	true	"SavingsTransfer"
// @Router			/v1/savings-transfers [post]
func CreateSavingsTransfer(c *gin.Context) {
	var editable SavingsTransferEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferResponse{Error: &e})
		return
	}

	transfer := editable.model()
	if err := models.DB.Create(&transfer).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferResponse{Error: &e})
		return
	}

	apiResource := newSavingsTransfer(c, transfer)
	c.JSON(http.StatusCreated, SavingsTransferResponse{Data: &apiResource})
}

// @Summary		List savings transfers
// @Description	Returns a list of savings transfers
// @Tags			SavingsTransfers
// @Produce		json
// @Success		200	{object}	SavingsTransferListResponse
// @Failure		400	{object}	SavingsTransferListResponse
// @Param			budget	query	string	false	"Filter by budget ID"
// @Param			target	query	string	false	"Filter by target savings account ID"
// @Param			name	query	string	false	"Filter by name"
// @Router			/v1/savings-transfers [get]
func GetSavingsTransfers(c *gin.Context) {
	var filter SavingsTransferQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SavingsTransferListResponse{Error: &e})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	where := filter.model()

	var transfers []models.SavingsTransfer
	err := models.DB.Where(&where, queryFields...).Order("created_at ASC").Find(&transfers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferListResponse{Error: &e})
		return
	}

	data := make([]SavingsTransfer, 0, len(transfers))
	for _, transfer := range transfers {
		data = append(data, newSavingsTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, SavingsTransferListResponse{Data: data})
}

// @Summary		Get savings transfer
// @Description	Returns a specific savings transfer
// @Tags			SavingsTransfers
// @Produce		json
// @Success		200	{object}	SavingsTransferResponse
// @Failure		400	{object}	SavingsTransferResponse
// @Failure		404	{object}	SavingsTransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-transfers/{id} [get]
func GetSavingsTransfer(c *gin.Context) {
	transfer, err := getSavingsTransferResource(c)
	if err != nil {
		return
	}

	apiResource := newSavingsTransfer(c, transfer)
	c.JSON(http.StatusOK, SavingsTransferResponse{Data: &apiResource})
}

// @Summary		Update savings transfer
// @Description	Updates an existing savings transfer. Only values to be updated need to be specified.
// @Tags			SavingsTransfers
// @Accept			json
// @Produce		json
// @Success		200			{object}	SavingsTransferResponse
// @Failure		400			{object}	SavingsTransferResponse
// @Failure		404			{object}	SavingsTransferResponse
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transfer	body		SavingsTransferEditable	true	"SavingsTransfer"
// @Router			/v1/savings-transfers/{id} [patch]
func UpdateSavingsTransfer(c *gin.Context) {
	transfer, err := getSavingsTransferResource(c)
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsTransferEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferResponse{Error: &e})
		return
	}

	var editable SavingsTransferEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferResponse{Error: &e})
		return
	}

	err = models.DB.Model(&transfer).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsTransferResponse{Error: &e})
		return
	}

	apiResource := newSavingsTransfer(c, transfer)
	c.JSON(http.StatusOK, SavingsTransferResponse{Data: &apiResource})
}

// @Summary		Delete savings transfer
// @Description	Deletes a savings transfer
// @Tags			SavingsTransfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-transfers/{id} [delete]
func DeleteSavingsTransfer(c *gin.Context) {
	transfer, err := getSavingsTransferResource(c)
	if err != nil {
		return
	}

	if err := models.DB.Delete(&transfer).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// getSavingsTransferResource loads the savings transfer referenced in the
// URI. Errors are written to the context.
func getSavingsTransferResource(c *gin.Context) (models.SavingsTransfer, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.SavingsTransfer{}, err
	}

	var transfer models.SavingsTransfer
	err := models.DB.Where(&models.SavingsTransfer{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).First(&transfer).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return models.SavingsTransfer{}, err
	}

	return transfer, nil
}
