package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

func (suite *TestSuiteStandard) TestIncomeTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})

	income := suite.createTestIncome(models.Income{
		BudgetID: budget.ID,
		FinancialItem: models.FinancialItem{
			Name: "  Salary \t",
		},
	})

	assert.Equal(suite.T(), "Salary", income.Name)
}

func (suite *TestSuiteStandard) TestIncomeOnePerBudget() {
	budget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestIncome(models.Income{BudgetID: budget.ID})

	err := models.DB.Create(&models.Income{
		BudgetID: budget.ID,
		FinancialItem: models.FinancialItem{
			Name:      "Second job",
			Frequency: schedule.FrequencyBiWeekly,
		},
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrIncomeExists)

	// Another budget can still have its own income
	other := suite.createTestBudget(models.Budget{})
	_ = suite.createTestIncome(models.Income{BudgetID: other.ID})
}

func (suite *TestSuiteStandard) TestIncomeRequiresBudget() {
	err := models.DB.Create(&models.Income{
		BudgetID: uuid.New(),
		FinancialItem: models.FinancialItem{
			Name:           "Orphaned",
			Frequency:      schedule.FrequencyTwiceMonthly,
			ScheduleAnchor: types.NewDate(2026, time.January, 1),
		},
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
