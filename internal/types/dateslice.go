package types

import (
	"golang.org/x/exp/slices"
)

// DateSlice is an ordered list of dates. It is stored as a JSON array in the
// database via the gorm JSON serializer.
type DateSlice []Date

// Sorted returns a sorted, de-duplicated copy of the slice.
// The receiver is never modified.
func (s DateSlice) Sorted() DateSlice {
	out := make(DateSlice, len(s))
	copy(out, s)

	slices.SortFunc(out, Date.Compare)
	return slices.CompactFunc(out, Date.Equal)
}

// Contains reports whether the slice contains the given date.
func (s DateSlice) Contains(d Date) bool {
	return slices.ContainsFunc(s, d.Equal)
}

// Filter returns a new slice with all dates for which keep returns true.
func (s DateSlice) Filter(keep func(Date) bool) DateSlice {
	out := make(DateSlice, 0, len(s))
	for _, d := range s {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// Latest returns the latest date in the slice and true, or the zero value
// and false for an empty slice.
func (s DateSlice) Latest() (Date, bool) {
	if len(s) == 0 {
		return Date{}, false
	}

	latest := s[0]
	for _, d := range s[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return latest, true
}
