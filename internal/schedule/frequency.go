// Package schedule generates the concrete occurrence dates for recurring
// financial items.
package schedule

// Frequency describes how often a financial item occurs.
type Frequency string

const (
	FrequencyWeekly       Frequency = "weekly"
	FrequencyBiWeekly     Frequency = "bi-weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyBiMonthly    Frequency = "bi-monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencyYearly       Frequency = "yearly"
	FrequencyOneTime      Frequency = "one-time"
	FrequencyTwiceMonthly Frequency = "twice-monthly"

	// FrequencyManual means the item's explicit date list is authoritative
	// and is never regenerated.
	FrequencyManual Frequency = "manual"

	// FrequencyMatchPayday means the item occurs on the income's pay dates.
	// Such items carry no anchor of their own; they receive a fresh copy of
	// the income's dates on every recalculation.
	FrequencyMatchPayday Frequency = "match-payday"
)

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyBiMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyOneTime, FrequencyTwiceMonthly,
		FrequencyManual, FrequencyMatchPayday:
		return true
	}
	return false
}

// Generated reports whether dates for this frequency are produced by the
// generator. For the remaining frequencies the explicit date list is
// authoritative (one-time, manual) or derived from the income
// (match-payday).
func (f Frequency) Generated() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyBiMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyTwiceMonthly:
		return true
	}
	return false
}

func (f Frequency) String() string {
	return string(f)
}
