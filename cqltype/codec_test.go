package cqltype_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cassmap/cqltime"
	"cassmap/cqltype"
)

func TestDefaultRegistryCoversScalars(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()
	for kind := cqltype.KindEnum(1); int(kind) < cqltype.KindTotal; kind++ {
		if !kind.IsScalar() {
			continue
		}

		c, err := reg.CodecFor(cqltype.Scalar(kind))
		require.NoError(t, err, kind.String())
		assert.Equal(t, kind, c.Kind())
	}
}

func TestCodecForComposite(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()
	_, err := reg.CodecFor(cqltype.ListOf(cqltype.Int))
	assert.ErrorIs(t, err, cqltype.ErrNoCodec)
}

func TestCodecDecode(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()
	id := uuid.MustParse("5f2b3a1c-8f1d-4f61-9f0a-1b2c3d4e5f60")

	tests := []struct {
		name string
		typ  *cqltype.NativeType
		raw  any
		want any
	}{
		{"text passthrough", cqltype.Text, "hello", "hello"},
		{"text from bytes", cqltype.Text, []byte("hello"), "hello"},
		{"bigint from int", cqltype.Bigint, 42, int64(42)},
		{"int from int64", cqltype.Int, int64(7), int32(7)},
		{"double widen", cqltype.Double, float32(1.5), float64(1.5)},
		{"uuid from string", cqltype.UUID, id.String(), id},
		{"timeuuid from bytes", cqltype.TimeUUID, [16]byte(id), id},
		{"timestamp from millis", cqltype.Timestamp, int64(1_700_000_000_000), time.UnixMilli(1_700_000_000_000).UTC()},
		{"date from string", cqltype.Date, "2024-03-05", cqltime.NewDate(2024, time.March, 5)},
		{"duration from string", cqltype.Duration, "1h30m", cqltime.Duration{Nanos: int64(90 * time.Minute)}},
		{"varint from int64", cqltype.Varint, int64(123), big.NewInt(123)},
		{"null stays null", cqltype.Text, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := reg.CodecFor(tt.typ)
			require.NoError(t, err)

			got, err := c.Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodecDecodeOutOfRange(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()

	tests := []struct {
		name string
		typ  *cqltype.NativeType
		raw  any
	}{
		{"int from wide int64", cqltype.Int, int64(5_000_000_000)},
		{"int from wide int", cqltype.Int, int(5_000_000_000)},
		{"smallint from wide int", cqltype.Smallint, 40_000},
		{"tinyint from wide int", cqltype.Tinyint, 200},
		{"time past midnight", cqltype.Time, int64(25 * time.Hour)},
		{"time negative", cqltype.Time, int64(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := reg.CodecFor(tt.typ)
			require.NoError(t, err)

			_, err = c.Decode(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestCodecDecodeNarrowInRange(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()

	tests := []struct {
		name string
		typ  *cqltype.NativeType
		raw  any
		want any
	}{
		{"int boundary", cqltype.Int, int64(-2_147_483_648), int32(-2_147_483_648)},
		{"smallint boundary", cqltype.Smallint, 32_767, int16(32_767)},
		{"tinyint boundary", cqltype.Tinyint, -128, int8(-128)},
		{"time at midnight", cqltype.Time, int64(0), cqltime.Time(0)},
		{"time end of day", cqltype.Time, int64(24*time.Hour - 1), cqltime.Time(24*time.Hour - 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := reg.CodecFor(tt.typ)
			require.NoError(t, err)

			got, err := c.Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodecDecodeMismatch(t *testing.T) {
	t.Parallel()

	reg := cqltype.NewDefaultRegistry()
	c, err := reg.CodecFor(cqltype.Boolean)
	require.NoError(t, err)

	_, err = c.Decode("yes")
	assert.Error(t, err)
}
