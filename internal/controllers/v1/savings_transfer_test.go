package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/rhizvo/Budget-Planner/internal/controllers/v1"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/test"
)

func (suite *TestSuiteStandard) TestCreateSavingsTransfer() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})

	transfer := suite.createTestSavingsTransfer(v1.SavingsTransferEditable{
		BudgetID:  budget.ID,
		TargetID:  account.ID,
		Name:      "Emergency top-up",
		Amount:    decimal.NewFromInt(150),
		Frequency: schedule.FrequencyMatchPayday,
	})

	assert.Equal(suite.T(), account.ID, transfer.TargetID)
	assert.Equal(suite.T(), schedule.FrequencyMatchPayday, transfer.Frequency)
}

func (suite *TestSuiteStandard) TestCreateSavingsTransferNoTarget() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/savings-transfers", v1.SavingsTransferEditable{
		BudgetID:  budget.ID,
		Name:      "Nowhere",
		Amount:    decimal.NewFromInt(50),
		Frequency: schedule.FrequencyMonthly,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetSavingsTransfersFilter() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	first := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	second := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})

	_ = suite.createTestSavingsTransfer(v1.SavingsTransferEditable{BudgetID: budget.ID, TargetID: first.ID, Name: "A"})
	_ = suite.createTestSavingsTransfer(v1.SavingsTransferEditable{BudgetID: budget.ID, TargetID: second.ID, Name: "B"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/savings-transfers?target="+first.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsTransferListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), "A", response.Data[0].Name)
	}
}

func (suite *TestSuiteStandard) TestUpdateSavingsTransfer() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	transfer := suite.createTestSavingsTransfer(v1.SavingsTransferEditable{
		BudgetID:  budget.ID,
		TargetID:  account.ID,
		Name:      "Top-up",
		Amount:    decimal.NewFromInt(150),
		Frequency: schedule.FrequencyMonthly,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transfer.Links.Self, map[string]any{
		"frequency": "match-payday",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsTransferResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), schedule.FrequencyMatchPayday, response.Data.Frequency)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(150)))
}

func (suite *TestSuiteStandard) TestDeleteSavingsTransfer() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{BudgetID: budget.ID})
	transfer := suite.createTestSavingsTransfer(v1.SavingsTransferEditable{
		BudgetID: budget.ID,
		TargetID: account.ID,
		Name:     "Top-up",
	})

	recorder := test.Request(suite.T(), http.MethodDelete, transfer.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, transfer.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
