package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rhizvo/Budget-Planner/internal/models"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	name := " Getting started		"
	note := " Bills and groceries  "

	budget := suite.createTestBudget(models.Budget{Name: name, Note: note})

	assert.Equal(suite.T(), "Getting started", budget.Name)
	assert.Equal(suite.T(), "Bills and groceries", budget.Note)
}

func (suite *TestSuiteStandard) TestBudgetInvalidHorizon() {
	budget := models.Budget{
		Name:      "Backwards",
		StartDate: types.NewDate(2026, time.June, 1),
		EndDate:   types.NewDate(2026, time.January, 1),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetInvalidHorizon)

	// A zero-length horizon is not valid either
	budget.EndDate = budget.StartDate
	err = models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetInvalidHorizon)
}

func (suite *TestSuiteStandard) TestBudgetNameNotUnique() {
	_ = suite.createTestBudget(models.Budget{Name: "Unique"})

	err := models.DB.Create(&models.Budget{
		Name:      "Unique",
		StartDate: types.NewDate(2026, time.January, 1),
		EndDate:   types.NewDate(2026, time.December, 31),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetNameNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetNotFound() {
	err := models.DB.Where(&models.Budget{DefaultModel: models.DefaultModel{ID: uuid.New()}}).First(&models.Budget{}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "budget")
}
