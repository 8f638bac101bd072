package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsAccount is a named savings target. Its balance seeds the
// cumulative per-target totals of the weekly projection.
type SavingsAccount struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:savings_account_name_budget_id"`
	Name     string    `gorm:"uniqueIndex:savings_account_name_budget_id"`
	Balance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrAccountNameNotUnique = errors.New("the savings account name must be unique for the budget")

func (a *SavingsAccount) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	return nil
}

func (a *SavingsAccount) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	return tx.Where(&Budget{DefaultModel: DefaultModel{ID: a.BudgetID}}).First(&Budget{}).Error
}
