package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/rhizvo/Budget-Planner/internal/types"
)

// FinalPaycheckName is the name of the synthesized pro-ration entry. The
// weekly projection reports it like any other expense, keyed under the
// Income category.
const FinalPaycheckName = "Final Pro-rated Paycheck"

var two = decimal.NewFromInt(2)

// FinalPaycheck synthesizes the partial-period adjustment for a
// twice-monthly income that expires between two scheduled pay dates.
//
// A twice-monthly period is modeled as half the day count of the last
// paydate's month. The returned amount is negative: it reverses the portion
// of the already-scheduled full payment that will not actually be received.
//
// The boolean result is false when no adjustment is needed: no pay date
// falls on or before the expiry, or the expiry coincides exactly with a
// scheduled pay date (a full period needs no adjustment).
func FinalPaycheck(amount decimal.Decimal, payDates types.DateSlice, expiry types.Date) (types.Date, decimal.Decimal, bool) {
	if expiry.IsZero() {
		return types.Date{}, decimal.Zero, false
	}

	elapsed := payDates.Filter(func(d types.Date) bool { return !d.After(expiry) })
	lastPayDate, ok := elapsed.Latest()
	if !ok || lastPayDate.Equal(expiry) {
		return types.Date{}, decimal.Zero, false
	}

	periodDays := decimal.NewFromInt(int64(lastPayDate.DaysInMonth())).Div(two)
	proratedDays := decimal.NewFromInt(int64(lastPayDate.DaysUntil(expiry)))

	prorated := amount.Div(periodDays).Mul(proratedDays).Neg()

	return expiry, prorated, true
}
