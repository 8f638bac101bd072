package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/rhizvo/Budget-Planner/internal/controllers/v1"
	"github.com/rhizvo/Budget-Planner/test"
)

func (suite *TestSuiteStandard) TestCreateSavingsAccount() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{
		BudgetID: budget.ID,
		Name:     "Emergency Fund",
		Balance:  decimal.NewFromInt(500),
	})

	assert.Equal(suite.T(), "Emergency Fund", account.Name)
	assert.True(suite.T(), account.Balance.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestCreateSavingsAccountDuplicateName() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID, Name: "Vacation"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/savings-accounts", v1.SavingsAccountEditable{
		BudgetID: budget.ID,
		Name:     "Vacation",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateSavingsAccountSameNameOtherBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	other := suite.createTestBudget(v1.BudgetEditable{})

	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID, Name: "Vacation"})
	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: other.ID, Name: "Vacation"})
}

func (suite *TestSuiteStandard) TestGetSavingsAccountsFilter() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	other := suite.createTestBudget(v1.BudgetEditable{})

	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	_ = suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: other.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/savings-accounts?budget="+budget.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsAccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestUpdateSavingsAccount() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID, Name: "Vacation"})

	recorder := test.Request(suite.T(), http.MethodPatch, account.Links.Self, map[string]any{
		"balance": "750",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsAccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(750)), response.Data.Balance.String())
}

func (suite *TestSuiteStandard) TestDeleteSavingsAccountCascades() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	transfer := suite.createTestSavingsTransfer(v1.SavingsTransferEditable{
		BudgetID: budget.ID,
		TargetID: account.ID,
		Name:     "Top-up",
	})

	recorder := test.Request(suite.T(), http.MethodDelete, account.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Transfers into the deleted account go with it
	recorder = test.Request(suite.T(), http.MethodGet, transfer.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
