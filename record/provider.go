package record

import (
	"cassmap/cqltype"
	"cassmap/entity"
	"cassmap/internal/common"
)

// ValueProvider answers the per-property questions asked by the
// object-construction layer. Implementations are read-only views created
// per record and discarded after construction.
type ValueProvider interface {
	// HasProperty reports whether the record's schema addresses the
	// property (by name or ordinal, depending on the record shape).
	HasProperty(p entity.Property) bool
	// PropertyValue returns the value for the property. A dynamic
	// expression on the property takes precedence unconditionally; the
	// record is not consulted at all in that case. Absent columns yield
	// nil rather than an error.
	PropertyValue(p entity.Property) (any, error)
	// Source returns the underlying structured record.
	Source() Record
}

// RowValueProvider reads property values from a row by column name.
type RowValueProvider struct {
	reader *RowReader
	eval   entity.Evaluator
}

// NewRowValueProvider wraps a row reader and the evaluator used for
// dynamic-expression properties.
func NewRowValueProvider(reader *RowReader, eval entity.Evaluator) *RowValueProvider {
	return &RowValueProvider{reader: reader, eval: eval}
}

func (p *RowValueProvider) HasProperty(prop entity.Property) bool {
	return p.reader.Source().IndexOf(prop.ColumnName()) >= 0
}

func (p *RowValueProvider) PropertyValue(prop entity.Property) (any, error) {
	if expr := prop.Expression(); expr != "" {
		return p.eval.Evaluate(expr)
	}

	i := p.reader.Source().IndexOf(prop.ColumnName())
	if i < 0 {
		return nil, nil
	}

	return p.reader.Get(i)
}

func (p *RowValueProvider) Source() Record { return p.reader.Source() }

// TupleValueProvider reads property values from a tuple by ordinal. The
// element's native type comes from the tuple's own descriptor, selecting
// the right codec for each position.
type TupleValueProvider struct {
	reader *TupleReader
	eval   entity.Evaluator
}

// NewTupleValueProvider wraps a tuple reader and an evaluator.
func NewTupleValueProvider(reader *TupleReader, eval entity.Evaluator) *TupleValueProvider {
	return &TupleValueProvider{reader: reader, eval: eval}
}

func (p *TupleValueProvider) HasProperty(prop entity.Property) bool {
	return common.IsInRange(0, prop.Ordinal(), p.reader.Source().Len()-1)
}

func (p *TupleValueProvider) PropertyValue(prop entity.Property) (any, error) {
	if expr := prop.Expression(); expr != "" {
		return p.eval.Evaluate(expr)
	}

	if !p.HasProperty(prop) {
		return nil, nil
	}

	return p.reader.Get(prop.Ordinal())
}

func (p *TupleValueProvider) Source() Record { return p.reader.Source() }

// UDTValueProvider reads property values from a UDT value by field name.
type UDTValueProvider struct {
	reader *RowReader
	eval   entity.Evaluator
}

// NewUDTValueProvider wraps a UDT value record directly; field access
// uses the same name-addressed reading as rows.
func NewUDTValueProvider(rec Record, codecs cqltype.CodecRegistry, eval entity.Evaluator) *UDTValueProvider {
	return &UDTValueProvider{reader: NewRowReader(rec, codecs), eval: eval}
}

func (p *UDTValueProvider) HasProperty(prop entity.Property) bool {
	return p.reader.Source().IndexOf(prop.ColumnName()) >= 0
}

func (p *UDTValueProvider) PropertyValue(prop entity.Property) (any, error) {
	if expr := prop.Expression(); expr != "" {
		return p.eval.Evaluate(expr)
	}

	i := p.reader.Source().IndexOf(prop.ColumnName())
	if i < 0 {
		return nil, nil
	}

	return p.reader.Get(i)
}

func (p *UDTValueProvider) Source() Record { return p.reader.Source() }
