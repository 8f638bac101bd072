// Package types implements special types for the Budget Planner.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date with day granularity.
//
// It is represented canonically as midnight UTC so that two Dates for the
// same day are always equal, regardless of how they were constructed.
type Date time.Time

// NewDate returns a new Date. Out-of-range days are normalized the same way
// time.Date normalizes them, so NewDate(2026, time.February, 0) is the last
// day of January 2026.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs, in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in RFC3339 full-date format ("YYYY-MM-DD").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// MarshalJSON implements the json.Marshaler interface.
// The date is encoded as a full-date string, without a time component.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both full-date strings and RFC3339 timestamps are accepted; for timestamps
// everything but the calendar day is ignored.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == `""` || value == "null" {
		return nil
	}

	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("dates must be encoded as strings, got %s", value)
	}
	value = value[1 : len(value)-1]

	pattern := "2006-01-02"
	if len(value) > len(pattern) {
		pattern = time.RFC3339
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Year returns the year of the date.
func (d Date) Year() int { return time.Time(d).Year() }

// Month returns the month of the date.
func (d Date) Month() time.Month { return time.Time(d).Month() }

// Day returns the day of the month.
func (d Date) Day() int { return time.Time(d).Day() }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return time.Time(d).Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which the date occurs.
func (d Date) ISOWeek() (year, week int) { return time.Time(d).ISOWeek() }

// Before reports whether the date d is before x.
func (d Date) Before(x Date) bool { return time.Time(d).Before(time.Time(x)) }

// After reports whether the date d is after x.
func (d Date) After(x Date) bool { return time.Time(d).After(time.Time(x)) }

// Equal reports whether d and x represent the same day.
func (d Date) Equal(x Date) bool { return time.Time(d).Equal(time.Time(x)) }

// Compare compares d and x, returning -1, 0 or 1.
func (d Date) Compare(x Date) int { return time.Time(d).Compare(time.Time(x)) }

// AddDays returns the date n days after d. n may be negative.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// DaysUntil returns the number of days from d to x. The result is negative
// if x is before d.
func (d Date) DaysUntil(x Date) int {
	return int(time.Time(x).Sub(time.Time(d)).Hours() / 24)
}

// AddMonths returns the date n months after d with the day of month clamped
// to anchorDay, or to the last day of the resulting month when it is shorter.
//
// The day is re-derived from anchorDay on every call so that repeated steps
// do not drift: Jan 31 stepped monthly yields Feb 28, Mar 31, Apr 30, not
// Feb 28, Mar 28.
func (d Date) AddMonths(n, anchorDay int) Date {
	year := d.Year()
	month := d.Month() + time.Month(n)

	last := daysIn(year, month)
	day := anchorDay
	if day > last {
		day = last
	}

	return NewDate(year, month, day)
}

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int {
	return daysIn(d.Year(), d.Month())
}

// EndOfMonth returns the last calendar day of the date's month.
func (d Date) EndOfMonth() Date {
	return NewDate(d.Year(), d.Month()+1, 0)
}

// StartOfWeek returns the Monday on or before the date.
func (d Date) StartOfWeek() Date {
	offset := int(d.Weekday() - time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDays(-offset)
}

// daysIn normalizes year/month and returns the length of that month.
// Day 0 of the following month is the last day of the requested one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
