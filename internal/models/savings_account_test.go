package models_test

import (
	"github.com/stretchr/testify/assert"

	"github.com/rhizvo/Budget-Planner/internal/models"
)

func (suite *TestSuiteStandard) TestSavingsAccountNameUniquePerBudget() {
	budget := suite.createTestBudget(models.Budget{})
	_ = suite.createTestSavingsAccount(models.SavingsAccount{BudgetID: budget.ID, Name: "Vacation"})

	err := models.DB.Create(&models.SavingsAccount{
		BudgetID: budget.ID,
		Name:     "Vacation",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	// The same name is fine in a different budget
	other := suite.createTestBudget(models.Budget{})
	_ = suite.createTestSavingsAccount(models.SavingsAccount{BudgetID: other.ID, Name: "Vacation"})
}

func (suite *TestSuiteStandard) TestSavingsAccountTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{})

	account := suite.createTestSavingsAccount(models.SavingsAccount{
		BudgetID: budget.ID,
		Name:     "  Emergency Fund ",
	})

	assert.Equal(suite.T(), "Emergency Fund", account.Name)
}
