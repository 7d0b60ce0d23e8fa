package cqltime

import (
	"fmt"
	"time"
)

// Time is a Cassandra time: nanoseconds since midnight, with no date
// attached. The valid range is [0, 24h).
type Time int64

// TimeOf extracts the clock part of t in t's location.
func TimeOf(t time.Time) Time {
	h, m, s := t.Clock()
	return Time(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTime parses hh:mm:ss with an optional fractional second part, the
// form used by CQL literals.
func ParseTime(s string) (Time, error) {
	var layout string
	switch {
	case len(s) == len("15:04:05"):
		layout = "15:04:05"
	default:
		layout = "15:04:05.999999999"
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("cqltime: invalid time %q: %w", s, err)
	}

	return TimeOf(t), nil
}

// Valid reports whether the value is within a single day.
func (t Time) Valid() bool {
	return t >= 0 && time.Duration(t) < 24*time.Hour
}

// Duration returns the offset from midnight.
func (t Time) Duration() time.Duration {
	return time.Duration(t)
}

func (t Time) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	ns := d % time.Second

	if ns == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d:%02d.%09d", h, m, s, ns)
}
