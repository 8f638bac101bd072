package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

type BudgetEditable struct {
	Name                string          `json:"name" example:"Rest of 2026" default:""`                     // Name of the budget
	Note                string          `json:"note" example:"Planning until the move" default:""`          // Note about the budget
	StartDate           types.Date      `json:"startDate" example:"2026-01-01"`                             // First day of the projection horizon
	EndDate             types.Date      `json:"endDate" example:"2026-12-31"`                               // Last day of the projection horizon
	InitialDebitBalance decimal.Decimal `json:"initialDebitBalance" example:"1743.12" default:"0"`          // Debit balance at the start of the horizon
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:                editable.Name,
		Note:                editable.Note,
		StartDate:           editable.StartDate,
		EndDate:             editable.EndDate,
		InitialDebitBalance: editable.InitialDebitBalance,
	}
}

type BudgetLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/budgets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Income      string `json:"income" example:"https://example.com/api/v1/incomes?budget=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Expenses    string `json:"expenses" example:"https://example.com/api/v1/expenses?budget=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Accounts    string `json:"accounts" example:"https://example.com/api/v1/savings-accounts?budget=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Transfers   string `json:"transfers" example:"https://example.com/api/v1/savings-transfers?budget=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Recalculate string `json:"recalculate" example:"https://example.com/api/v1/budgets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/recalculate"`
	Forecast    string `json:"forecast" example:"https://example.com/api/v1/budgets/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/forecast"`
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := requestHost(c)
	self := fmt.Sprintf("%s/v1/budgets/%s", url, model.ID)

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:                model.Name,
			Note:                model.Note,
			StartDate:           model.StartDate,
			EndDate:             model.EndDate,
			InitialDebitBalance: model.InitialDebitBalance,
		},
		Links: BudgetLinks{
			Self:        self,
			Income:      fmt.Sprintf("%s/v1/incomes?budget=%s", url, model.ID),
			Expenses:    fmt.Sprintf("%s/v1/expenses?budget=%s", url, model.ID),
			Accounts:    fmt.Sprintf("%s/v1/savings-accounts?budget=%s", url, model.ID),
			Transfers:   fmt.Sprintf("%s/v1/savings-transfers?budget=%s", url, model.ID),
			Recalculate: self + "/recalculate",
			Forecast:    self + "/forecast",
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of resources
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // The resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Name string `form:"name"` // By name
	Note string `form:"note"` // By the note
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Name: f.Name,
		Note: f.Note,
	}
}
