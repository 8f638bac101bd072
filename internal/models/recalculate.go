package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rhizvo/Budget-Planner/internal/calendar"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

// BudgetData is the fully loaded budget aggregate. It is the input for the
// weekly projection and the working set of schedule recalculation.
type BudgetData struct {
	Budget          Budget
	Income          *Income
	SavingsAccounts []SavingsAccount
	Expenses        []Expense
	Transfers       []SavingsTransfer
}

// LoadBudgetData loads a budget with all of its items.
func LoadBudgetData(db *gorm.DB, id uuid.UUID) (BudgetData, error) {
	var data BudgetData

	err := db.Where(&Budget{DefaultModel: DefaultModel{ID: id}}).First(&data.Budget).Error
	if err != nil {
		return BudgetData{}, err
	}

	var income Income
	err = db.Where(&Income{BudgetID: id}).First(&income).Error
	if err == nil {
		data.Income = &income
	} else if !errors.Is(err, ErrResourceNotFound) {
		return BudgetData{}, err
	}

	err = db.Where(&SavingsAccount{BudgetID: id}).Order("name ASC").Find(&data.SavingsAccounts).Error
	if err != nil {
		return BudgetData{}, err
	}

	err = db.Where(&Expense{BudgetID: id}).Order("category ASC, name ASC").Find(&data.Expenses).Error
	if err != nil {
		return BudgetData{}, err
	}

	err = db.Where(&SavingsTransfer{BudgetID: id}).Order("created_at ASC").Find(&data.Transfers).Error
	if err != nil {
		return BudgetData{}, err
	}

	return data, nil
}

// RecalculateSchedules regenerates the concrete occurrence dates of every
// item of a budget and persists them.
//
// It must be called whenever the horizon, an item's frequency or an item's
// anchor changes, and before any projection. Running it twice with
// unchanged inputs yields identical date lists: every schedule is replaced,
// never appended to, and the pro-rated paycheck entry is recreated from
// scratch on each run.
//
// Income pay dates are business-day adjusted (payroll never pays on a
// weekend or holiday); expense and transfer dates stay on their calendar
// cadence. asOf drops already-elapsed occurrences from the fresh schedules.
func RecalculateSchedules(db *gorm.DB, budgetID uuid.UUID, holidays calendar.HolidaySet, asOf types.Date) error {
	data, err := LoadBudgetData(db, budgetID)
	if err != nil {
		return err
	}

	end := data.Budget.EndDate

	return db.Transaction(func(tx *gorm.DB) error {
		// The pro-rated paycheck entry is derived data. Drop it before
		// anything else so it cannot outlive a deleted income.
		err := tx.Where(&Expense{BudgetID: budgetID, ProRated: true}).Delete(&Expense{}).Error
		if err != nil {
			return err
		}

		var payDates types.DateSlice

		if data.Income != nil {
			income := data.Income

			if err := income.regenerate(end, holidays, true, asOf); err != nil {
				return fmt.Errorf("recalculating income %q: %w", income.Name, err)
			}

			if err := prorate(tx, *income); err != nil {
				return err
			}

			if err := tx.Save(income).Error; err != nil {
				return err
			}

			payDates = income.Dates
		}

		for idx := range data.Expenses {
			expense := &data.Expenses[idx]
			if expense.ProRated {
				continue
			}

			if err := recalculateItem(&expense.FinancialItem, end, holidays, payDates, asOf); err != nil {
				return fmt.Errorf("recalculating expense %q: %w", expense.Name, err)
			}

			if err := tx.Save(expense).Error; err != nil {
				return err
			}
		}

		for idx := range data.Transfers {
			transfer := &data.Transfers[idx]

			if err := recalculateItem(&transfer.FinancialItem, end, holidays, payDates, asOf); err != nil {
				return fmt.Errorf("recalculating savings transfer %q: %w", transfer.Name, err)
			}

			if err := tx.Save(transfer).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// recalculateItem replaces one item's dates. Items matching the payday get
// an independent copy of the income's dates, so a later edit of one list
// can never alter the other.
func recalculateItem(item *FinancialItem, end types.Date, holidays calendar.HolidaySet, payDates types.DateSlice, asOf types.Date) error {
	if item.Frequency == schedule.FrequencyMatchPayday {
		dates := make(types.DateSlice, len(payDates))
		copy(dates, payDates)

		if !item.ExpiryDate.IsZero() {
			dates = dates.Filter(func(d types.Date) bool { return !d.After(item.ExpiryDate) })
		}

		item.Dates = dates
		return nil
	}

	return item.regenerate(end, holidays, false, asOf)
}

// prorate synthesizes the final-paycheck entry for an expiring
// twice-monthly income. The caller has already removed any previous
// entry, so at most one exists per budget.
func prorate(tx *gorm.DB, income Income) error {
	if income.Frequency != schedule.FrequencyTwiceMonthly || income.ExpiryDate.IsZero() {
		return nil
	}

	on, amount, ok := schedule.FinalPaycheck(income.Amount, income.Dates, income.ExpiryDate)
	if !ok {
		return nil
	}

	entry := Expense{
		BudgetID: income.BudgetID,
		Category: CategoryIncome,
		ProRated: true,
		FinancialItem: FinancialItem{
			Name:      schedule.FinalPaycheckName,
			Amount:    amount,
			Frequency: schedule.FrequencyOneTime,
			Dates:     types.DateSlice{on},
		},
	}

	return tx.Create(&entry).Error
}
