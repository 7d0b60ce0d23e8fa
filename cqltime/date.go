package cqltime

import (
	"fmt"
	"time"
)

// Date is a Cassandra date: a calendar day counted in days since the Unix
// epoch, with no clock and no time zone. Negative values are days before
// the epoch.
type Date int32

const dateLayout = "2006-01-02"

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return dateFromParts(y, m, d)
}

// NewDate builds a Date from calendar parts. Out-of-range parts are
// normalized the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return dateFromParts(year, month, day)
}

// ParseDate parses a date in the yyyy-mm-dd form used by CQL literals.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, fmt.Errorf("cqltime: invalid date %q: %w", s, err)
	}

	return DateOf(t), nil
}

func dateFromParts(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date(t.Unix() / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Parts returns the calendar parts of the day.
func (d Date) Parts() (year int, month time.Month, day int) {
	return d.Time().Date()
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}
