package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/calendar"
	"github.com/rhizvo/Budget-Planner/internal/schedule"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

// FinancialItem is the shape shared by incomes, expenses and savings
// transfers: an amount, a recurrence rule and the concrete dates derived
// from it.
//
// Dates is authoritative for one-time and manual frequencies and derived for
// everything else. ScheduleAnchor is the first occurrence the schedule is
// regenerated from; a zero anchor on a generated frequency means "no
// schedule yet" and resolves to an empty date list rather than an error.
// A zero ExpiryDate means the item never expires.
type FinancialItem struct {
	Name           string
	Amount         decimal.Decimal    `gorm:"type:DECIMAL(20,8)"`
	Frequency      schedule.Frequency `gorm:"type:string"`
	Dates          types.DateSlice    `gorm:"serializer:json"`
	ScheduleAnchor types.Date
	ExpiryDate     types.Date
}

var ErrItemInvalidFrequency = errors.New("the frequency is not valid")

func (i *FinancialItem) trim() {
	i.Name = strings.TrimSpace(i.Name)
}

// validate rejects frequencies outside the closed enum. The schedule
// generator treats an unknown frequency as a programming error, so it must
// never reach the database.
func (i *FinancialItem) validate() error {
	if !i.Frequency.Valid() {
		return ErrItemInvalidFrequency
	}

	return nil
}

// Expired reports whether the item is expired from the given date on.
func (i FinancialItem) Expired(from types.Date) bool {
	return !i.ExpiryDate.IsZero() && from.After(i.ExpiryDate)
}

// regenerate replaces the item's dates with a freshly generated schedule.
// The previous slice is never reused, so no two items can alias the same
// backing array.
func (i *FinancialItem) regenerate(end types.Date, holidays calendar.HolidaySet, adjustForHolidays bool, asOf types.Date) error {
	if !i.Frequency.Generated() {
		return nil
	}

	if i.ScheduleAnchor.IsZero() {
		// No anchor yet: a soft "no schedule" state, not an error.
		i.Dates = types.DateSlice{}
		return nil
	}

	dates, err := schedule.Generate(i.ScheduleAnchor, end, i.Frequency, holidays, adjustForHolidays, asOf)
	if err != nil {
		return err
	}

	if !i.ExpiryDate.IsZero() {
		dates = dates.Filter(func(d types.Date) bool { return !d.After(i.ExpiryDate) })
	}

	i.Dates = dates
	return nil
}
