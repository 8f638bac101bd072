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

type IncomeEditable struct {
	BudgetID       uuid.UUID          `json:"budgetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                  // ID of the budget this income belongs to
	Name           string             `json:"name" example:"Salary" default:""`                                         // Name of the income stream
	Amount         decimal.Decimal    `json:"amount" example:"2000" multipleOf:"0.00000001" default:"0"`                // Amount received per occurrence
	Frequency      schedule.Frequency `json:"frequency" example:"twice-monthly"`                                        // How often the income is received
	Dates          types.DateSlice    `json:"dates"`                                                                    // Occurrence dates. Authoritative for one-time and manual frequencies
	ScheduleAnchor types.Date         `json:"scheduleAnchor" example:"2026-01-01"`                                      // First occurrence the schedule is generated from
	ExpiryDate     types.Date         `json:"expiryDate" example:"2026-06-15"`                                          // Last day the income is received. Empty means it never expires
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		BudgetID: editable.BudgetID,
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

type IncomeLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/incomes/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

// newIncome returns the API v1 representation of the resource
func newIncome(c *gin.Context, model models.Income) Income {
	url := requestHost(c)

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			BudgetID:       model.BudgetID,
			Name:           model.Name,
			Amount:         model.Amount,
			Frequency:      model.Frequency,
			Dates:          model.Dates,
			ScheduleAnchor: model.ScheduleAnchor,
			ExpiryDate:     model.ExpiryDate,
		},
		Links: IncomeLinks{
			Self:   fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type IncomeListResponse struct {
	Data  []Income `json:"data"`                                                          // List of resources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // The resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	BudgetID bp_uuid.UUID `form:"budget"` // By budget ID
	Name     string       `form:"name"`   // By name
}

func (f IncomeQueryFilter) model() models.Income {
	return models.Income{
		BudgetID: f.BudgetID.UUID,
		FinancialItem: models.FinancialItem{
			Name: f.Name,
		},
	}
}
