package schedule

import (
	"errors"
	"fmt"

	"github.com/rhizvo/Budget-Planner/internal/calendar"
	"github.com/rhizvo/Budget-Planner/internal/types"
)

// ErrInvalidFrequency is returned when the generator is invoked for a
// frequency it has no cadence for. This is a programming error in the
// caller, not a recoverable condition.
var ErrInvalidFrequency = errors.New("the frequency has no generated schedule")

// Generate produces all occurrence dates for a generated frequency, stepping
// from the anchor date until the horizon end is exceeded.
//
// Month-based cadences re-derive the day of month from the anchor on every
// step, so a clamped step (Jan 31 -> Feb 28) does not shorten all later
// steps. When adjustForHolidays is set, every date falling on a weekend or
// holiday is moved backward to the previous business day. Twice-monthly
// schedules are always adjusted, regardless of the flag.
//
// Only dates on or after asOf are returned; a zero asOf keeps everything.
// Already-elapsed occurrences are not of interest to a fresh projection.
// An anchor after the horizon end yields an empty schedule, not an error.
func Generate(anchor, end types.Date, freq Frequency, holidays calendar.HolidaySet, adjustForHolidays bool, asOf types.Date) (types.DateSlice, error) {
	if !freq.Generated() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFrequency, freq)
	}

	if anchor.After(end) {
		return types.DateSlice{}, nil
	}

	if freq == FrequencyTwiceMonthly {
		return clipAsOf(TwiceMonthly(anchor, end, holidays), asOf), nil
	}

	var dates types.DateSlice

	stepDays, stepMonths := freq.step()
	anchorDay := anchor.Day()

	for current := anchor; !current.After(end); {
		date := current
		if adjustForHolidays {
			date = calendar.PreviousBusinessDay(date, holidays)
		}
		dates = append(dates, date)

		if stepDays > 0 {
			current = current.AddDays(stepDays)
		} else {
			current = current.AddMonths(stepMonths, anchorDay)
		}
	}

	return clipAsOf(dates.Sorted(), asOf), nil
}

// TwiceMonthly produces the 15th and the last calendar day of every month
// overlapping [start, end], each independently moved backward to the
// previous business day when needed. Duplicates from short months are
// removed. Pay dates are always holiday-adjusted for this cadence.
func TwiceMonthly(start, end types.Date, holidays calendar.HolidaySet) types.DateSlice {
	var dates types.DateSlice

	for month := types.NewDate(start.Year(), start.Month(), 1); !month.After(end); month = month.AddMonths(1, 1) {
		for _, target := range []types.Date{
			types.NewDate(month.Year(), month.Month(), 15),
			month.EndOfMonth(),
		} {
			if target.Before(start) || target.After(end) {
				continue
			}
			dates = append(dates, calendar.PreviousBusinessDay(target, holidays))
		}
	}

	return dates.Sorted()
}

// step returns the fixed increment for a cadence, either in days or in
// months. Exactly one of the two is non-zero.
func (f Frequency) step() (days, months int) {
	switch f {
	case FrequencyWeekly:
		return 7, 0
	case FrequencyBiWeekly:
		return 14, 0
	case FrequencyMonthly:
		return 0, 1
	case FrequencyBiMonthly:
		return 0, 2
	case FrequencyQuarterly:
		return 0, 3
	case FrequencyYearly:
		return 0, 12
	}
	return 0, 0
}

func clipAsOf(dates types.DateSlice, asOf types.Date) types.DateSlice {
	if asOf.IsZero() {
		return dates
	}
	return dates.Filter(func(d types.Date) bool { return !d.Before(asOf) })
}
