package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/models"
	bp_uuid "github.com/rhizvo/Budget-Planner/internal/uuid"
)

type SavingsAccountEditable struct {
	BudgetID uuid.UUID       `json:"budgetId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // ID of the budget this account belongs to
	Name     string          `json:"name" example:"Emergency Fund" default:""`                // Name of the savings target
	Balance  decimal.Decimal `json:"balance" example:"500" default:"0"`                       // Balance at the start of the horizon
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsAccountEditable) model() models.SavingsAccount {
	return models.SavingsAccount{
		BudgetID: editable.BudgetID,
		Name:     editable.Name,
		Balance:  editable.Balance,
	}
}

type SavingsAccountLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/savings-accounts/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
	Budget    string `json:"budget" example:"https://example.com/api/v1/budgets/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Transfers string `json:"transfers" example:"https://example.com/api/v1/savings-transfers?target=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`
}

type SavingsAccount struct {
	models.DefaultModel
	SavingsAccountEditable
	Links SavingsAccountLinks `json:"links"`
}

// newSavingsAccount returns the API v1 representation of the resource
func newSavingsAccount(c *gin.Context, model models.SavingsAccount) SavingsAccount {
	url := requestHost(c)

	return SavingsAccount{
		DefaultModel: model.DefaultModel,
		SavingsAccountEditable: SavingsAccountEditable{
			BudgetID: model.BudgetID,
			Name:     model.Name,
			Balance:  model.Balance,
		},
		Links: SavingsAccountLinks{
			Self:      fmt.Sprintf("%s/v1/savings-accounts/%s", url, model.ID),
			Budget:    fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
			Transfers: fmt.Sprintf("%s/v1/savings-transfers?target=%s", url, model.ID),
		},
	}
}

type SavingsAccountListResponse struct {
	Data  []SavingsAccount `json:"data"`                                                          // List of resources
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsAccountResponse struct {
	Data  *SavingsAccount `json:"data"`                                                          // The resource
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsAccountQueryFilter struct {
	BudgetID bp_uuid.UUID `form:"budget"` // By budget ID
	Name     string       `form:"name"`   // By name
}

func (f SavingsAccountQueryFilter) model() models.SavingsAccount {
	return models.SavingsAccount{
		BudgetID: f.BudgetID.UUID,
		Name:     f.Name,
	}
}
