package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups expenses for report column labeling. It has no effect on
// the calculation itself.
type Category string

const (
	CategoryGroceries Category = "Groceries"
	CategoryBills     Category = "Bills"
	CategoryStreaming Category = "Streaming"
	CategoryMisc      Category = "Misc"
	CategoryOneTime   Category = "One-Time"

	// CategoryIncome is reserved for entries the recalculation synthesizes
	// itself, currently only the final pro-rated paycheck. It cannot be set
	// through the API.
	CategoryIncome Category = "Income"
)

// Valid reports whether the category is one a user may assign.
func (c Category) Valid() bool {
	switch c {
	case CategoryGroceries, CategoryBills, CategoryStreaming, CategoryMisc, CategoryOneTime:
		return true
	}
	return false
}

// Expense is a recurring or one-time expense of a budget.
type Expense struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"index"`
	FinancialItem
	Category Category `gorm:"type:string"`

	// ProRated marks the entry synthesized by schedule recalculation for an
	// expiring income. It is replaced on every recalculation and never
	// edited by users.
	ProRated bool
}

var ErrExpenseInvalidCategory = errors.New("the expense category is not valid")

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.trim()

	if !e.ProRated && !e.Category.Valid() {
		return ErrExpenseInvalidCategory
	}

	return e.validate()
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	return tx.Where(&Budget{DefaultModel: DefaultModel{ID: e.BudgetID}}).First(&Budget{}).Error
}
