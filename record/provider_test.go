package record_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cassmap/cqltype"
	"cassmap/entity"
	"cassmap/record"
)

var noEval = entity.EvaluatorFunc(func(expr string) (any, error) {
	return nil, errors.New("no evaluator wired")
})

func TestRowValueProvider(t *testing.T) {
	t.Parallel()

	provider := record.NewRowValueProvider(record.NewRowReader(sampleRow(), nil), noEval)

	t.Run("has property by column name", func(t *testing.T) {
		t.Parallel()

		assert.True(t, provider.HasProperty(entity.NewSimpleProperty("name", reflect.TypeFor[string]())))
		assert.False(t, provider.HasProperty(entity.NewSimpleProperty("missing", reflect.TypeFor[string]())))
	})

	t.Run("reads by column name", func(t *testing.T) {
		t.Parallel()

		v, err := provider.PropertyValue(entity.NewSimpleProperty("age", reflect.TypeFor[int32]()))
		require.NoError(t, err)
		assert.Equal(t, int32(37), v)
	})

	t.Run("column override on the property", func(t *testing.T) {
		t.Parallel()

		p := entity.NewSimpleProperty("displayName", reflect.TypeFor[string]())
		p.Column = "name"

		v, err := provider.PropertyValue(p)
		require.NoError(t, err)
		assert.Equal(t, "Ada", v)
	})

	t.Run("absent column yields nil", func(t *testing.T) {
		t.Parallel()

		v, err := provider.PropertyValue(entity.NewSimpleProperty("missing", reflect.TypeFor[string]()))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("list scenario", func(t *testing.T) {
		t.Parallel()

		v, err := provider.PropertyValue(entity.NewSimpleProperty("tags", reflect.TypeFor[[]string]()))
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, v)
	})

	t.Run("source exposes the record", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 8, provider.Source().Len())
	})
}

func TestExpressionPrecedence(t *testing.T) {
	t.Parallel()

	eval := entity.EvaluatorFunc(func(expr string) (any, error) {
		assert.Equal(t, "#{computed}", expr)
		return "from-expression", nil
	})

	provider := record.NewRowValueProvider(record.NewRowReader(sampleRow(), nil), eval)

	p := entity.NewSimpleProperty("name", reflect.TypeFor[string]())
	p.Expr = "#{computed}"

	v, err := provider.PropertyValue(p)
	require.NoError(t, err)
	assert.Equal(t, "from-expression", v, "expression wins over the present column")
}

func TestExpressionErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	eval := entity.EvaluatorFunc(func(string) (any, error) { return nil, boom })

	provider := record.NewRowValueProvider(record.NewRowReader(sampleRow(), nil), eval)

	p := entity.NewSimpleProperty("name", reflect.TypeFor[string]())
	p.Expr = "#{x}"

	_, err := provider.PropertyValue(p)
	assert.ErrorIs(t, err, boom)
}

func TestTupleValueProvider(t *testing.T) {
	t.Parallel()

	tupleType := cqltype.TupleOf(cqltype.Int, cqltype.ListOf(cqltype.Text))
	rec := record.TupleRecord(tupleType, int32(1), []any{"x", "y"})
	provider := record.NewTupleValueProvider(record.NewTupleReader(rec, nil), noEval)

	ordinal := func(i int) *entity.SimpleProperty {
		p := entity.NewSimpleProperty("elem", reflect.TypeFor[any]())
		p.TupleIndex = i
		return p
	}

	t.Run("ordinal bound check", func(t *testing.T) {
		t.Parallel()

		assert.True(t, provider.HasProperty(ordinal(0)))
		assert.True(t, provider.HasProperty(ordinal(1)))
		assert.False(t, provider.HasProperty(ordinal(5)), "two fields, ordinal 5 is out of range")
		assert.False(t, provider.HasProperty(ordinal(entity.NoOrdinal)))
	})

	t.Run("element codec from the tuple descriptor", func(t *testing.T) {
		t.Parallel()

		v, err := provider.PropertyValue(ordinal(1))
		require.NoError(t, err)
		assert.Equal(t, []any{"x", "y"}, v)
	})

	t.Run("out of range yields nil", func(t *testing.T) {
		t.Parallel()

		v, err := provider.PropertyValue(ordinal(5))
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestUDTValueProvider(t *testing.T) {
	t.Parallel()

	addressType := cqltype.UDTOf("address",
		cqltype.UDTField{Name: "street", Type: cqltype.Text},
		cqltype.UDTField{Name: "zip", Type: cqltype.Int},
	)
	rec := record.UDTRecord(addressType, map[string]any{"street": "Main st", "zip": int32(12345)})
	provider := record.NewUDTValueProvider(rec, nil, noEval)

	assert.True(t, provider.HasProperty(entity.NewSimpleProperty("street", reflect.TypeFor[string]())))
	assert.False(t, provider.HasProperty(entity.NewSimpleProperty("country", reflect.TypeFor[string]())))

	v, err := provider.PropertyValue(entity.NewSimpleProperty("zip", reflect.TypeFor[int32]()))
	require.NoError(t, err)
	assert.Equal(t, int32(12345), v)
}
