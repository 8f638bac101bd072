package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
	bp_uuid "github.com/rhizvo/Budget-Planner/internal/uuid"
)

type SavingsTransferEditable struct {
	BudgetID       uuid.UUID          `json:"budgetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`  // ID of the budget this transfer belongs to
	TargetID       uuid.UUID          `json:"targetId" example:"438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`  // ID of the savings account the money goes to
	Name           string             `json:"name" example:"Emergency top-up" default:""`               // Name of the transfer
	Amount         decimal.Decimal    `json:"amount" example:"150" multipleOf:"0.00000001" default:"0"` // Amount per occurrence
	Frequency      schedule.Frequency `json:"frequency" example:"match-payday"`                         // How often the transfer occurs
	Dates          types.DateSlice    `json:"dates"`                                                    // Occurrence dates. Authoritative for one-time and manual frequencies
	ScheduleAnchor types.Date         `json:"scheduleAnchor" example:"2026-01-15"`                      // First occurrence the schedule is generated from
	ExpiryDate     types.Date         `json:"expiryDate" example:"2026-09-30"`                          // Last day the transfer occurs. Empty means it never expires
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsTransferEditable) model() models.SavingsTransfer {
	return models.SavingsTransfer{
		BudgetID: editable.BudgetID,
		TargetID: editable.TargetID,
		FinancialItem: models.FinancialItem{
			Name:           editable.Name,
			Amount:         editable.Amount,
			Frequency:      editable.Frequency,
			Dates:          editable.Dates,
			ScheduleAnchor: editable.ScheduleAnchor,
			ExpiryDate:     editable.ExpiryDate,
		},
	}
}

type SavingsTransferLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/savings-transfers/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Target string `json:"target" example:"https://example.com/api/v1/savings-accounts/6b5f5a12-41b4-4b92-a353-7696ea06a4c5"`
}

type SavingsTransfer struct {
	models.DefaultModel
	SavingsTransferEditable
	Links SavingsTransferLinks `json:"links"`
}

// newSavingsTransfer returns the API v1 representation of the resource
func newSavingsTransfer(c *gin.Context, model models.SavingsTransfer) SavingsTransfer {
	url := requestHost(c)

	return SavingsTransfer{
		DefaultModel: model.DefaultModel,
		SavingsTransferEditable: SavingsTransferEditable{
			BudgetID:       model.BudgetID,
			TargetID:       model.TargetID,
			Name:           model.Name,
			Amount:         model.Amount,
			Frequency:      model.Frequency,
			Dates:          model.Dates,
			ScheduleAnchor: model.ScheduleAnchor,
			ExpiryDate:     model.ExpiryDate,
		},
		Links: SavingsTransferLinks{
			Self:   fmt.Sprintf("%s/v1/savings-transfers/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			Target: fmt.Sprintf("%s/v1/savings-accounts/%s", url, model.TargetID),
		},
	}
}

type SavingsTransferListResponse struct {
	Data  []SavingsTransfer `json:"data"`                                                          // List of resources
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsTransferResponse struct {
	Data  *SavingsTransfer `json:"data"`                                                          // The resource
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsTransferQueryFilter struct {
	BudgetID bp_uuid.UUID `form:"budget"` // By budget ID
	TargetID bp_uuid.UUID `form:"target"` // By target savings account ID
	Name     string       `form:"name"`   // By name
}

func (f SavingsTransferQueryFilter) model() models.SavingsTransfer {
	return models.SavingsTransfer{
		BudgetID: f.BudgetID.UUID,
		TargetID: f.TargetID.UUID,
		FinancialItem: models.FinancialItem{
			Name: f.Name,
		},
	}
}
