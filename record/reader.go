package record

import (
	"fmt"
	"reflect"

	"cassmap/cqltype"
)

// RowReader extracts raw values from a row record by index or name.
type RowReader struct {
	record Record
	codecs cqltype.CodecRegistry
}

// NewRowReader wraps a row record. A nil registry falls back to the
// default codecs.
func NewRowReader(r Record, codecs cqltype.CodecRegistry) *RowReader {
	return &RowReader{record: r, codecs: orDefault(codecs)}
}

// Source returns the underlying record.
func (r *RowReader) Source() Record { return r.record }

// Get extracts the value at a column index, dispatching on the column's
// native shape. Null columns yield nil.
func (r *RowReader) Get(i int) (any, error) {
	return readIndex(r.record, r.codecs, i)
}

// GetNamed extracts a value by column name. A name absent from the
// schema fails fast with ErrColumnNotFound.
func (r *RowReader) GetNamed(name string) (any, error) {
	i := r.record.IndexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return r.Get(i)
}

// GetTyped extracts the value at an index and verifies it is assignment
// compatible with the requested type.
func (r *RowReader) GetTyped(i int, want reflect.Type) (any, error) {
	return readTyped(r.record, r.codecs, i, want)
}

// TupleReader extracts raw values from a positional tuple record. The
// element native types come from the tuple's own type descriptor, so the
// same shape dispatch applies.
type TupleReader struct {
	record Record
	codecs cqltype.CodecRegistry
}

// NewTupleReader wraps a tuple record. A nil registry falls back to the
// default codecs.
func NewTupleReader(r Record, codecs cqltype.CodecRegistry) *TupleReader {
	return &TupleReader{record: r, codecs: orDefault(codecs)}
}

// Source returns the underlying record.
func (r *TupleReader) Source() Record { return r.record }

// Get extracts the element at a tuple position.
func (r *TupleReader) Get(i int) (any, error) {
	return readIndex(r.record, r.codecs, i)
}

// GetTyped extracts the element at a position and verifies assignment
// compatibility.
func (r *TupleReader) GetTyped(i int, want reflect.Type) (any, error) {
	return readTyped(r.record, r.codecs, i, want)
}

func orDefault(codecs cqltype.CodecRegistry) cqltype.CodecRegistry {
	if codecs == nil {
		return cqltype.NewDefaultRegistry()
	}

	return codecs
}

// readIndex is the single shape-dispatch algorithm behind both readers.
func readIndex(rec Record, codecs cqltype.CodecRegistry, i int) (any, error) {
	if i < 0 || i >= rec.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, rec.Len())
	}

	if rec.IsNull(i) {
		return nil, nil
	}

	t := rec.TypeAt(i)
	switch kind := t.Kind(); {
	case kind == cqltype.KindList || kind == cqltype.KindSet || kind == cqltype.KindVector:
		return decodeElements(codecs, t.Elem(), rec.ValueAt(i), i)

	case kind == cqltype.KindMap:
		// maps come back raw: key/value heterogeneity makes per-element
		// re-typing unsafe at this layer
		return rec.ValueAt(i), nil

	case kind == cqltype.KindTuple || kind == cqltype.KindUDT:
		// nested structured values stay readable as nested records
		return rec.ValueAt(i), nil

	case kind.IsScalar():
		return rec.ValueAt(i), nil

	default:
		return nil, fmt.Errorf("%w: %s at column %d", ErrUnknownShape, kind, i)
	}
}

// decodeElements re-types a sequence column through the element codec.
func decodeElements(codecs cqltype.CodecRegistry, elem *cqltype.NativeType, raw any, col int) (any, error) {
	codec, err := codecs.CodecFor(elem)
	if err != nil {
		return nil, fmt.Errorf("column %d: %w", col, err)
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("record: column %d holds %T, expected a sequence", col, raw)
	}

	out := make([]any, rv.Len())
	for j := range rv.Len() {
		v, err := codec.Decode(rv.Index(j).Interface())
		if err != nil {
			return nil, fmt.Errorf("column %d element %d: %w", col, j, err)
		}

		out[j] = v
	}

	return out, nil
}

func readTyped(rec Record, codecs cqltype.CodecRegistry, i int, want reflect.Type) (any, error) {
	v, err := readIndex(rec, codecs, i)
	if err != nil || v == nil {
		return nil, err
	}

	if !reflect.TypeOf(v).AssignableTo(want) {
		return nil, &CastError{Index: i, Value: v, Want: want}
	}

	return v, nil
}
