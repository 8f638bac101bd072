// Package calendar implements business-day logic and the holiday calendar.
package calendar

import (
	"time"

	"github.com/rhizvo/Budget-Planner/internal/types"
)

// HolidaySet is a set of dates that are not business days in addition to
// weekends. It is built once per calculation and treated as immutable.
type HolidaySet map[types.Date]struct{}

// NewHolidaySet returns a HolidaySet containing the given dates.
func NewHolidaySet(dates ...types.Date) HolidaySet {
	s := make(HolidaySet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether the set contains the given date.
func (s HolidaySet) Contains(d types.Date) bool {
	_, ok := s[d]
	return ok
}

// Add adds a date to the set.
func (s HolidaySet) Add(d types.Date) {
	s[d] = struct{}{}
}

// IsBusinessDay reports whether a date is a business day, i.e. a weekday
// that is not in the holiday set. A nil set means weekends are the only
// non-business days.
func IsBusinessDay(d types.Date, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	return !holidays.Contains(d)
}

// PreviousBusinessDay walks backward from d, one day at a time, until it
// finds a business day. If d already is one, it is returned unchanged.
// Adjustment is always backward, matching the payroll convention of paying
// before a weekend or holiday, never after.
func PreviousBusinessDay(d types.Date, holidays HolidaySet) types.Date {
	for !IsBusinessDay(d, holidays) {
		d = d.AddDays(-1)
	}
	return d
}
