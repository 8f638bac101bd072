package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rhizvo/Budget-Planner/internal/types"
)

// Budget is the aggregate root. It owns the projection horizon, the initial
// debit balance and, through foreign keys, all financial items.
type Budget struct {
	DefaultModel
	Name                string `gorm:"uniqueIndex:budget_name"`
	Note                string
	StartDate           types.Date
	EndDate             types.Date
	InitialDebitBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrBudgetInvalidHorizon = errors.New("the budget end date must be after its start date")
	ErrBudgetNameNotUnique  = errors.New("the budget name must be unique")
)

// BeforeSave validates the horizon and trims whitespace from all strings.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if !b.StartDate.IsZero() && !b.EndDate.After(b.StartDate) {
		return ErrBudgetInvalidHorizon
	}

	return nil
}
