package record

import "cassmap/cqltype"

// Record is the structured-record capability produced by the driver
// layer: a flat sequence of typed, possibly-null column slots addressable
// by index and, for rows and UDT values, by name.
type Record interface {
	// Len returns the number of column slots.
	Len() int
	// IsNull reports whether the slot holds no value. Callers must treat
	// a null slot's value as absent, not as a zero value.
	IsNull(i int) bool
	// TypeAt returns the native type descriptor of the slot.
	TypeAt(i int) *cqltype.NativeType
	// ValueAt returns the driver-decoded raw value of the slot.
	ValueAt(i int) any
	// IndexOf resolves a written column name to a slot index with
	// case/quoting-aware matching, -1 when the schema has no such column.
	IndexOf(name string) int
}

// Column is one named slot of a MapRecord.
type Column struct {
	Name  string
	Type  *cqltype.NativeType
	Value any
}

// MapRecord is an in-memory Record, used as the adapter target for
// driver rows and as the nested representation of tuple and UDT values.
// A nil Value marks a null slot.
type MapRecord struct {
	columns []Column
}

// NewMapRecord builds a record over the given columns in order.
func NewMapRecord(columns ...Column) *MapRecord {
	return &MapRecord{columns: columns}
}

// TupleRecord builds an unnamed positional record from a tuple native
// type and its raw element values.
func TupleRecord(t *cqltype.NativeType, values ...any) *MapRecord {
	columns := make([]Column, len(t.Elems()))
	for i, elem := range t.Elems() {
		var v any
		if i < len(values) {
			v = values[i]
		}

		columns[i] = Column{Type: elem, Value: v}
	}

	return &MapRecord{columns: columns}
}

// UDTRecord builds a named record from a UDT native type and its raw
// field values keyed by field name.
func UDTRecord(t *cqltype.NativeType, values map[string]any) *MapRecord {
	columns := make([]Column, len(t.Fields()))
	for i, f := range t.Fields() {
		columns[i] = Column{Name: f.Name, Type: f.Type, Value: values[f.Name]}
	}

	return &MapRecord{columns: columns}
}

func (r *MapRecord) Len() int { return len(r.columns) }

func (r *MapRecord) IsNull(i int) bool {
	return i < 0 || i >= len(r.columns) || r.columns[i].Value == nil
}

func (r *MapRecord) TypeAt(i int) *cqltype.NativeType {
	return r.columns[i].Type
}

func (r *MapRecord) ValueAt(i int) any {
	return r.columns[i].Value
}

func (r *MapRecord) IndexOf(name string) int {
	for i, c := range r.columns {
		if cqltype.NewIdentifier(c.Name).Equal(name) {
			return i
		}
	}

	return -1
}
