package v1_test

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	v1 "github.com/rhizvo/Budget-Planner/internal/controllers/v1"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
	"github.com/rhizvo/Budget-Planner/test"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/budgets", "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))

	budget := suite.createTestBudget(v1.BudgetEditable{})
	recorder = test.Request(suite.T(), http.MethodOptions, budget.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Rest of 2026", Note: "Until the move"})

	assert.Equal(suite.T(), "Rest of 2026", budget.Name)
	assert.Equal(suite.T(), "Until the move", budget.Note)
	assert.NotEmpty(suite.T(), budget.Links.Forecast)
}

func (suite *TestSuiteStandard) TestCreateBudgetDuplicateName() {
	_ = suite.createTestBudget(v1.BudgetEditable{Name: "Twin"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		Name:      "Twin",
		StartDate: date(2026, time.January, 1),
		EndDate:   date(2026, time.December, 31),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalidHorizon() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", v1.BudgetEditable{
		Name:      "Backwards",
		StartDate: date(2026, time.June, 1),
		EndDate:   date(2026, time.January, 1),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateBudgetInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", `{ "name": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBudgets() {
	_ = suite.createTestBudget(v1.BudgetEditable{Name: "Apartment"})
	_ = suite.createTestBudget(v1.BudgetEditable{Name: "Zoo trip"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		// Sorted by name
		assert.Equal(suite.T(), "Apartment", response.Data[0].Name)
		assert.Equal(suite.T(), "Zoo trip", response.Data[1].Name)
	}
}

func (suite *TestSuiteStandard) TestGetBudgetsFilter() {
	_ = suite.createTestBudget(v1.BudgetEditable{Name: "Exact Name"})
	_ = suite.createTestBudget(v1.BudgetEditable{Name: "Another"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets?name=Exact Name", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, suite.detailURL("budgets", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), budget.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetBudgetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/5b95e1e9-3493-4b68-8d1e-3bff572dbfc5", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetBudgetInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{Name: "Before"})

	recorder := test.Request(suite.T(), http.MethodPatch, budget.Links.Self, map[string]any{
		"note": "Added later",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Fields not in the request body are untouched
	assert.Equal(suite.T(), "Before", response.Data.Name)
	assert.Equal(suite.T(), "Added later", response.Data.Note)
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, budget.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, budget.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// writeHolidayDir creates a holiday directory with a single file for 2026
// and points HOLIDAY_DIR at it.
func (suite *TestSuiteStandard) writeHolidayDir(lines ...string) {
	dir := suite.T().TempDir()
	content := strings.Join(lines, "\n") + "\n"

	err := os.WriteFile(filepath.Join(dir, "holidays_2026.txt"), []byte(content), 0o644)
	if err != nil {
		suite.T().Fatalf("writing holiday file: %v", err)
	}

	suite.T().Setenv("HOLIDAY_DIR", dir)
}

func (suite *TestSuiteStandard) TestRecalculateBudget() {
	suite.writeHolidayDir("Canada Day,2026-07-01")

	budget := suite.createTestBudget(v1.BudgetEditable{
		StartDate: date(2026, time.January, 1),
		EndDate:   date(2026, time.March, 31),
	})
	income := suite.createTestIncome(v1.IncomeEditable{
		BudgetID:       budget.ID,
		Name:           "Paycheck",
		Amount:         decimal.NewFromInt(2000),
		Frequency:      schedule.FrequencyTwiceMonthly,
		ScheduleAnchor: date(2026, time.January, 1),
	})

	recorder := test.Request(suite.T(), http.MethodPost, budget.Links.Recalculate, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, suite.detailURL("incomes", income.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Jan 15, Jan 30 (31st is a Saturday), Feb 13, Feb 27, Mar 13 and
	// Mar 31 after weekend adjustment
	assert.Equal(suite.T(), types.DateSlice{
		date(2026, time.January, 15),
		date(2026, time.January, 30),
		date(2026, time.February, 13),
		date(2026, time.February, 27),
		date(2026, time.March, 13),
		date(2026, time.March, 31),
	}, response.Data.Dates)
}

func (suite *TestSuiteStandard) TestRecalculateBudgetAsOf() {
	suite.writeHolidayDir("Canada Day,2026-07-01")

	budget := suite.createTestBudget(v1.BudgetEditable{
		StartDate: date(2026, time.January, 1),
		EndDate:   date(2026, time.March, 31),
	})
	income := suite.createTestIncome(v1.IncomeEditable{
		BudgetID:       budget.ID,
		Name:           "Paycheck",
		Amount:         decimal.NewFromInt(2000),
		Frequency:      schedule.FrequencyTwiceMonthly,
		ScheduleAnchor: date(2026, time.January, 1),
	})

	recorder := test.Request(suite.T(), http.MethodPost, budget.Links.Recalculate+"?asOf=2026-03-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, suite.detailURL("incomes", income.ID), "")
	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), types.DateSlice{
		date(2026, time.March, 13),
		date(2026, time.March, 31),
	}, response.Data.Dates)
}

func (suite *TestSuiteStandard) TestRecalculateBudgetInvalidAsOf() {
	suite.writeHolidayDir("Canada Day,2026-07-01")
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodPost, budget.Links.Recalculate+"?asOf=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRecalculateBudgetNotFound() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets/5b95e1e9-3493-4b68-8d1e-3bff572dbfc5/recalculate", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// forecastFixture builds a January budget with income, rent, a savings
// account and a matching transfer, recalculated and ready to project.
func (suite *TestSuiteStandard) forecastFixture() v1.Budget {
	suite.writeHolidayDir("Canada Day,2026-07-01")

	budget := suite.createTestBudget(v1.BudgetEditable{
		StartDate:           date(2026, time.January, 1),
		EndDate:             date(2026, time.January, 31),
		InitialDebitBalance: decimal.NewFromInt(1000),
	})
	_ = suite.createTestIncome(v1.IncomeEditable{
		BudgetID:       budget.ID,
		Name:           "Salary",
		Amount:         decimal.NewFromInt(2000),
		Frequency:      schedule.FrequencyTwiceMonthly,
		ScheduleAnchor: date(2026, time.January, 1),
	})
	_ = suite.createTestExpense(v1.ExpenseEditable{
		BudgetID:       budget.ID,
		Name:           "Rent",
		Category:       "Bills",
		Amount:         decimal.NewFromInt(1200),
		Frequency:      schedule.FrequencyMonthly,
		ScheduleAnchor: date(2026, time.January, 1),
	})
	account := suite.createTestSavingsAccount(v1.SavingsAccountEditable{
		BudgetID: budget.ID,
		Name:     "Emergency Fund",
		Balance:  decimal.NewFromInt(500),
	})
	_ = suite.createTestSavingsTransfer(v1.SavingsTransferEditable{
		BudgetID:  budget.ID,
		TargetID:  account.ID,
		Name:      "Emergency top-up",
		Amount:    decimal.NewFromInt(150),
		Frequency: schedule.FrequencyMatchPayday,
	})

	recorder := test.Request(suite.T(), http.MethodPost, budget.Links.Recalculate, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	return budget
}

func (suite *TestSuiteStandard) TestGetBudgetForecast() {
	budget := suite.forecastFixture()

	recorder := test.Request(suite.T(), http.MethodGet, budget.Links.Forecast, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Mon Dec 29 2025 through Mon Jan 26 2026
	if assert.Len(suite.T(), response.Data, 5) {
		first := response.Data[0]
		assert.Equal(suite.T(), 1, first.WeekOfYear)
		assert.Equal(suite.T(), date(2025, time.December, 29), first.WeekStart)
		assert.True(suite.T(), first.TotalExpenses.Equal(decimal.NewFromInt(1200)), first.TotalExpenses.String())

		last := response.Data[len(response.Data)-1]
		// 1000 + 4000 - 1200 - 300
		assert.True(suite.T(), last.RunningBalance.Equal(decimal.NewFromInt(3500)), last.RunningBalance.String())
		assert.True(suite.T(), last.SavingsBalances["Emergency Fund"].Equal(decimal.NewFromInt(800)))
	}
}

func (suite *TestSuiteStandard) TestGetBudgetForecastEmpty() {
	budget := suite.createTestBudget(v1.BudgetEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, budget.Links.Forecast, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.NotEmpty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestGetBudgetForecastCSV() {
	budget := suite.forecastFixture()

	recorder := test.Request(suite.T(), http.MethodGet, budget.Links.Forecast+"/csv", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.Equal(suite.T(), "text/csv", recorder.Header().Get("content-type"))
	assert.Contains(suite.T(), recorder.Header().Get("content-disposition"), "budget_plan.csv")

	body := recorder.Body.String()
	assert.Contains(suite.T(), body, "Week of Year")
	assert.Contains(suite.T(), body, "Saved: Emergency Fund")
	assert.Contains(suite.T(), body, "Bills: Rent")
}

func (suite *TestSuiteStandard) TestGetBudgetForecastNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/5b95e1e9-3493-4b68-8d1e-3bff572dbfc5/forecast", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
