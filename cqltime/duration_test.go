package cqltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cassmap/cqltime"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  cqltime.Duration
	}{
		{"1y", cqltime.Duration{Months: 12}},
		{"2mo", cqltime.Duration{Months: 2}},
		{"1y2mo", cqltime.Duration{Months: 14}},
		{"3w", cqltime.Duration{Days: 21}},
		{"3w4d", cqltime.Duration{Days: 25}},
		{"90m", cqltime.Duration{Nanos: int64(90 * time.Minute)}},
		{"1h30m45s", cqltime.Duration{Nanos: int64(time.Hour + 30*time.Minute + 45*time.Second)}},
		{"250ms", cqltime.Duration{Nanos: int64(250 * time.Millisecond)}},
		{"15us", cqltime.Duration{Nanos: int64(15 * time.Microsecond)}},
		{"7ns", cqltime.Duration{Nanos: 7}},
		{"-2d12h", cqltime.Duration{Days: -2, Nanos: -int64(12 * time.Hour)}},
		{"2147483647d", cqltime.Duration{Days: 2_147_483_647}},
		{"1y2mo3w4d5h6m7s", cqltime.Duration{
			Months: 14,
			Days:   25,
			Nanos:  int64(5*time.Hour + 6*time.Minute + 7*time.Second),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := cqltime.ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationErrors(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"12",
		"h",
		"1x",
		"1m2h",  // units out of order
		"1d1d",  // repeated unit
		"1.5h",  // fractions are not part of the grammar
		"1h 2m", // no spaces
		"3000000000d",          // days overflow int32
		"200000000y",           // months overflow int32
		"178956971y",           // months overflow on accumulation
		"9223372036854775807h", // nanos overflow int64
		"-3000000000w",         // sign does not widen the range
	}

	for _, input := range invalid {
		t.Run("invalid "+input, func(t *testing.T) {
			t.Parallel()

			_, err := cqltime.ParseDuration(input)
			assert.Error(t, err)
		})
	}
}

func TestDurationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    cqltime.Duration
		want string
	}{
		{cqltime.Duration{}, "0s"},
		{cqltime.Duration{Months: 14}, "1y2mo"},
		{cqltime.Duration{Days: 25}, "25d"},
		{cqltime.Duration{Nanos: int64(90 * time.Minute)}, "1h30m"},
		{cqltime.Duration{Months: -1, Nanos: -int64(time.Second)}, "-1mo1s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDurationStringParseRoundTrip(t *testing.T) {
	t.Parallel()

	d := cqltime.Duration{Months: 26, Days: 11, Nanos: int64(3*time.Hour + 250*time.Millisecond)}
	back, err := cqltime.ParseDuration(d.String())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}
