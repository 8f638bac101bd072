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

type ExpenseEditable struct {
	BudgetID       uuid.UUID          `json:"budgetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`   // ID of the budget this expense belongs to
	Name           string             `json:"name" example:"Rent" default:""`                            // Name of the expense
	Category       models.Category    `json:"category" example:"Bills"`                                  // Category the expense is reported under
	Amount         decimal.Decimal    `json:"amount" example:"1200" multipleOf:"0.00000001" default:"0"` // Amount per occurrence
	Frequency      schedule.Frequency `json:"frequency" example:"monthly"`                               // How often the expense occurs
	Dates          types.DateSlice    `json:"dates"`                                                     // Occurrence dates. Authoritative for one-time and manual frequencies
	ScheduleAnchor types.Date         `json:"scheduleAnchor" example:"2026-01-10"`                       // First occurrence the schedule is generated from
	ExpiryDate     types.Date         `json:"expiryDate" example:"2026-09-30"`                           // Last day the expense occurs. Empty means it never expires
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		BudgetID: editable.BudgetID,
		Category: editable.Category,
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

type ExpenseLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/expenses/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable

	// ProRated marks the entry synthesized for an expiring income
	ProRated bool `json:"proRated" example:"false"`

	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the resource
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := requestHost(c)

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			BudgetID:       model.BudgetID,
			Name:           model.Name,
			Category:       model.Category,
			Amount:         model.Amount,
			Frequency:      model.Frequency,
			Dates:          model.Dates,
			ScheduleAnchor: model.ScheduleAnchor,
			ExpiryDate:     model.ExpiryDate,
		},
		ProRated: model.ProRated,
		Links: ExpenseLinks{
			Self:   fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of resources
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // The resource
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	BudgetID bp_uuid.UUID `form:"budget"`   // By budget ID
	Category string       `form:"category"` // By category
	Name     string       `form:"name"`     // By name
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		BudgetID: f.BudgetID.UUID,
		Category: models.Category(f.Category),
		FinancialItem: models.FinancialItem{
			Name: f.Name,
		},
	}
}
