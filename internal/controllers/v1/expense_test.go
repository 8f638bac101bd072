package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/rhizvo/Budget-Planner/internal/controllers/v1"
	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
	"github.com/rhizvo/Budget-Planner/test"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	expense := suite.createTestExpense(v1.ExpenseEditable{
		BudgetID:       budget.ID,
		Name:           "Rent",
		Category:       models.CategoryBills,
		Amount:         decimal.NewFromInt(1200),
		Frequency:      schedule.FrequencyMonthly,
		ScheduleAnchor: date(2026, time.January, 10),
	})

	assert.Equal(suite.T(), models.CategoryBills, expense.Category)
	assert.False(suite.T(), expense.ProRated)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidCategory() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseEditable{
		BudgetID:  budget.ID,
		Name:      "Mystery",
		Category:  "Gadgets",
		Frequency: schedule.FrequencyMonthly,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpenseReservedCategory() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", v1.ExpenseEditable{
		BudgetID:  budget.ID,
		Name:      "Fake paycheck",
		Category:  models.CategoryIncome,
		Frequency: schedule.FrequencyOneTime,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpenseManualDates() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	expense := suite.createTestExpense(v1.ExpenseEditable{
		BudgetID:  budget.ID,
		Name:      "Car repair",
		Category:  models.CategoryOneTime,
		Amount:    decimal.NewFromInt(650),
		Frequency: schedule.FrequencyOneTime,
		Dates:     types.DateSlice{date(2026, time.April, 3)},
	})

	assert.Equal(suite.T(), types.DateSlice{date(2026, time.April, 3)}, expense.Dates)
}

func (suite *TestSuiteStandard) TestGetExpensesFilter() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	_ = suite.createTestExpense(v1.ExpenseEditable{BudgetID: budget.ID, Name: "Rent", Category: models.CategoryBills, Frequency: schedule.FrequencyMonthly})
	_ = suite.createTestExpense(v1.ExpenseEditable{BudgetID: budget.ID, Name: "Groceries", Category: models.CategoryGroceries, Frequency: schedule.FrequencyWeekly})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/expenses?category=Bills", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), "Rent", response.Data[0].Name)
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{
		BudgetID:  budget.ID,
		Name:      "Streaming",
		Category:  models.CategoryStreaming,
		Amount:    decimal.NewFromInt(15),
		Frequency: schedule.FrequencyMonthly,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{
		"expiryDate": "2026-06-30",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), date(2026, time.June, 30), response.Data.ExpiryDate)
	assert.Equal(suite.T(), "Streaming", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	budget := suite.createTestBudget(v1.BudgetEditable{})
	expense := suite.createTestExpense(v1.ExpenseEditable{
		BudgetID:  budget.ID,
		Name:      "Gym",
		Category:  models.CategoryMisc,
		Frequency: schedule.FrequencyMonthly,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
