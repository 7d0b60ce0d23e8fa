package convert_test

import (
	"math/big"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cassmap/convert"
	"cassmap/cqltime"
)

type money struct {
	Cents int64
}

func moneyToInt64(m money) int64 { return m.Cents }
func int64ToMoney(v int64) money { return money{Cents: v} }

func TestIsSimpleTypeBaseTable(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.Config{})

	simple := []reflect.Type{
		reflect.TypeFor[int32](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[string](),
		reflect.TypeFor[[]byte](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[uuid.UUID](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[cqltime.Date](),
		reflect.TypeFor[cqltime.Duration](),
		reflect.TypeFor[*big.Int](),
		reflect.TypeFor[[]float32](),
	}

	for _, typ := range simple {
		assert.True(t, c.IsSimpleType(typ), typ.String())
	}

	assert.False(t, c.IsSimpleType(reflect.TypeFor[money]()))
	assert.False(t, c.IsSimpleType(reflect.TypeFor[[]string]()))
}

func TestCustomConverterMakesTypeSimple(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.Config{Converters: []convert.Converter{
		convert.MustConverter(moneyToInt64),
		convert.MustConverter(int64ToMoney),
	}})

	assert.True(t, c.IsSimpleType(reflect.TypeFor[money]()))

	target, ok := c.WriteTarget(reflect.TypeFor[money]())
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int64](), target)

	conv, ok := c.ConverterFor(reflect.TypeFor[money](), reflect.TypeFor[int64]())
	require.True(t, ok)

	out, err := conv.Convert(money{Cents: 250})
	require.NoError(t, err)
	assert.Equal(t, int64(250), out)
}

func TestBuiltinConverters(t *testing.T) {
	t.Parallel()

	c := convert.New(convert.Config{})

	t.Run("epoch millis to time", func(t *testing.T) {
		t.Parallel()

		conv, ok := c.ConverterFor(reflect.TypeFor[int64](), reflect.TypeFor[time.Time]())
		require.True(t, ok)

		out, err := conv.Convert(int64(1_700_000_000_000))
		require.NoError(t, err)
		assert.Equal(t, time.UnixMilli(1_700_000_000_000).UTC(), out)
	})

	t.Run("string to uuid", func(t *testing.T) {
		t.Parallel()

		conv, ok := c.ConverterFor(reflect.TypeFor[string](), reflect.TypeFor[uuid.UUID]())
		require.True(t, ok)

		id := uuid.MustParse("5f2b3a1c-8f1d-4f61-9f0a-1b2c3d4e5f60")
		out, err := conv.Convert(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, out)

		_, err = conv.Convert("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("string to date", func(t *testing.T) {
		t.Parallel()

		conv, ok := c.ConverterFor(reflect.TypeFor[string](), reflect.TypeFor[cqltime.Date]())
		require.True(t, ok)

		out, err := conv.Convert("2024-03-05")
		require.NoError(t, err)
		assert.Equal(t, cqltime.NewDate(2024, time.March, 5), out)
	})
}

func timeToString(t time.Time) string              { return t.Format(time.RFC3339) }
func dateToTime(d cqltime.Date) time.Time          { return d.Time() }
func durationToString(d cqltime.Duration) string   { return d.String() }
func stringToTimeCustom(string) (time.Time, error) { panic("never called") }

func TestTemporalFilter(t *testing.T) {
	t.Parallel()

	cfg := convert.Config{Converters: []convert.Converter{
		convert.MustConverter(timeToString),       // source in the time package: rejected
		convert.MustConverter(dateToTime),         // source in cqltime: rejected
		convert.MustConverter(durationToString),   // source in cqltime: rejected
		convert.MustConverter(stringToTimeCustom), // target time.Time but source not temporal: kept
	}}

	c := convert.New(cfg)

	_, ok := c.ConverterFor(reflect.TypeFor[time.Time](), reflect.TypeFor[string]())
	assert.False(t, ok, "time.Time source must be filtered")

	_, ok = c.ConverterFor(reflect.TypeFor[cqltime.Date](), reflect.TypeFor[time.Time]())
	assert.False(t, ok, "cqltime source must be filtered")

	_, ok = c.ConverterFor(reflect.TypeFor[cqltime.Duration](), reflect.TypeFor[string]())
	assert.False(t, ok)

	_, ok = c.ConverterFor(reflect.TypeFor[string](), reflect.TypeFor[time.Time]())
	assert.True(t, ok, "non-temporal source into time.Time stays registered")
}

func TestFilterIdempotence(t *testing.T) {
	t.Parallel()

	filteredOut := convert.MustConverter(dateToTime)

	once := convert.New(convert.Config{Converters: []convert.Converter{filteredOut}})
	twice := convert.New(convert.Config{Converters: []convert.Converter{filteredOut, filteredOut}})

	for _, c := range []*convert.CustomConversions{once, twice} {
		assert.True(t, c.IsSimpleType(reflect.TypeFor[cqltime.Date]()), "base table unaffected")

		_, ok := c.ConverterFor(reflect.TypeFor[cqltime.Date](), reflect.TypeFor[time.Time]())
		assert.False(t, ok)
	}
}

func TestParseConverter(t *testing.T) {
	t.Parallel()

	t.Run("plain function", func(t *testing.T) {
		t.Parallel()

		c, err := convert.ParseConverter(moneyToInt64)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[money](), c.Source)
		assert.Equal(t, reflect.TypeFor[int64](), c.Target)
		assert.True(t, strings.HasSuffix(c.Name, "moneyToInt64"), c.Name)
	})

	t.Run("function with error", func(t *testing.T) {
		t.Parallel()

		c, err := convert.ParseConverter(stringToTimeCustom)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[string](), c.Source)
	})

	t.Run("rejects non-functions", func(t *testing.T) {
		t.Parallel()

		_, err := convert.ParseConverter(42)
		assert.ErrorIs(t, err, convert.ErrConverterNotAFunction)
	})

	t.Run("rejects wrong shapes", func(t *testing.T) {
		t.Parallel()

		_, err := convert.ParseConverter(func() {})
		assert.ErrorIs(t, err, convert.ErrNotAConverter)

		_, err = convert.ParseConverter(func(a, b int) int { return 0 })
		assert.ErrorIs(t, err, convert.ErrNotAConverter)

		_, err = convert.ParseConverter(func(int) (int, bool) { return 0, false })
		assert.ErrorIs(t, err, convert.ErrNotAConverter)
	})

	t.Run("rejects double pointers", func(t *testing.T) {
		t.Parallel()

		_, err := convert.ParseConverter(func(**int) int { return 0 })
		assert.ErrorIs(t, err, convert.ErrDoublePointer)
	})
}
