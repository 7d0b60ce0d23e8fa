package cqltime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a Cassandra duration: an exact months/days/nanoseconds
// triple. Months and days are kept apart from nanoseconds because their
// length in wall time depends on the calendar; collapsing them would
// change the meaning of the value.
type Duration struct {
	Months int32
	Days   int32
	Nanos  int64
}

var errEmptyDuration = errors.New("cqltime: empty duration")

// durationUnits lists unit suffixes in the order they must be matched:
// longer suffixes first so "mo" does not parse as "m" + garbage. The rank
// is the unit's position by size and enforces the decreasing-order rule.
var durationUnits = []struct {
	suffix string
	rank   int
	months int32
	days   int32
	nanos  int64
}{
	{"mo", 1, 1, 0, 0},
	{"ms", 7, 0, 0, int64(time.Millisecond)},
	{"us", 8, 0, 0, int64(time.Microsecond)},
	{"µs", 8, 0, 0, int64(time.Microsecond)},
	{"ns", 9, 0, 0, 1},
	{"y", 0, 12, 0, 0},
	{"w", 2, 0, 7, 0},
	{"d", 3, 0, 1, 0},
	{"h", 4, 0, 0, int64(time.Hour)},
	{"m", 5, 0, 0, int64(time.Minute)},
	{"s", 6, 0, 0, int64(time.Second)},
}

// ParseDuration parses the compact CQL duration form, e.g. "1y2mo3w4d5h"
// or "-90m30s". Units must appear in decreasing order of size and each at
// most once; this matches the server's grammar.
func ParseDuration(s string) (Duration, error) {
	if s == "" {
		return Duration{}, errEmptyDuration
	}

	input := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var out Duration
	lastUnit := -1

	for len(s) > 0 {
		digits := 0
		for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
			digits++
		}

		if digits == 0 {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: expected a number at %q", input, s)
		}

		n, err := strconv.ParseInt(s[:digits], 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: %w", input, err)
		}

		s = s[digits:]

		unit := -1
		for i, u := range durationUnits {
			if strings.HasPrefix(s, u.suffix) {
				unit = i
				s = s[len(u.suffix):]
				break
			}
		}

		if unit < 0 {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: unknown unit at %q", input, s)
		}

		if durationUnits[unit].rank <= lastUnit {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: units out of order", input)
		}
		lastUnit = durationUnits[unit].rank

		u := durationUnits[unit]
		if u.nanos != 0 {
			if n > math.MaxInt64/u.nanos || out.Nanos > math.MaxInt64-u.nanos*n {
				return Duration{}, fmt.Errorf("cqltime: invalid duration %q: value out of range", input)
			}

			out.Nanos += u.nanos * n
			continue
		}

		if n > math.MaxInt32 {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: value out of range", input)
		}

		months := int64(out.Months) + int64(u.months)*n
		days := int64(out.Days) + int64(u.days)*n
		if months > math.MaxInt32 || days > math.MaxInt32 {
			return Duration{}, fmt.Errorf("cqltime: invalid duration %q: value out of range", input)
		}

		out.Months, out.Days = int32(months), int32(days)
	}

	if neg {
		out.Months, out.Days, out.Nanos = -out.Months, -out.Days, -out.Nanos
	}

	return out, nil
}

// IsZero reports whether all three parts are zero.
func (d Duration) IsZero() bool {
	return d.Months == 0 && d.Days == 0 && d.Nanos == 0
}

func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}

	var b strings.Builder
	months, days, nanos := d.Months, d.Days, d.Nanos
	if months < 0 || days < 0 || nanos < 0 {
		b.WriteByte('-')
		months, days, nanos = -months, -days, -nanos
	}

	appendPart := func(n int64, suffix string) {
		if n != 0 {
			b.WriteString(strconv.FormatInt(n, 10))
			b.WriteString(suffix)
		}
	}

	appendPart(int64(months/12), "y")
	appendPart(int64(months%12), "mo")
	appendPart(int64(days), "d")

	ns := time.Duration(nanos)
	appendPart(int64(ns/time.Hour), "h")
	appendPart(int64(ns%time.Hour/time.Minute), "m")
	appendPart(int64(ns%time.Minute/time.Second), "s")
	appendPart(int64(ns%time.Second/time.Millisecond), "ms")
	appendPart(int64(ns%time.Millisecond/time.Microsecond), "us")
	appendPart(int64(ns%time.Microsecond), "ns")

	return b.String()
}
