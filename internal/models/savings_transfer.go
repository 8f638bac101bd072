package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavingsTransfer is a recurring or one-time transfer from the debit
// balance to a savings account.
type SavingsTransfer struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"index"`
	FinancialItem
	Target   SavingsAccount `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TargetID uuid.UUID      `gorm:"index"`
}

func (t *SavingsTransfer) BeforeSave(_ *gorm.DB) error {
	t.trim()
	return t.validate()
}

// BeforeCreate verifies that the referenced savings account exists.
func (t *SavingsTransfer) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	return tx.Where(&SavingsAccount{DefaultModel: DefaultModel{ID: t.TargetID}}).First(&SavingsAccount{}).Error
}

// AfterDelete removes all transfers referencing a deleted savings account.
// The database-level ON DELETE CASCADE only fires on hard deletes, so the
// soft delete cascades here.
func (a *SavingsAccount) AfterDelete(tx *gorm.DB) error {
	return tx.Where("target_id = ?", a.ID).Delete(&SavingsTransfer{}).Error
}
