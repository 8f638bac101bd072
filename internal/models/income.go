package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Income is the single income stream of a budget. The unique index on
// BudgetID enforces that a budget has at most one.
type Income struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:income_budget_id"`
	FinancialItem
}

var ErrIncomeExists = errors.New("the budget already has an income, update or delete it instead")

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.trim()
	return i.validate()
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	return tx.Where(&Budget{DefaultModel: DefaultModel{ID: i.BudgetID}}).First(&Budget{}).Error
}
