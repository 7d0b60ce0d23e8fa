package coltype

import (
	"fmt"
	"reflect"
	"strings"

	"cassmap/cqltype"
	"cassmap/internal/common"
)

// ColumnType is an immutable recursive descriptor of a value's shape: a
// scalar, a list/set over one component, a map over a key and a value
// component, or a tuple/UDT over N field components. Instances are shared
// freely and never mutated after construction.
type ColumnType struct {
	shape      ShapeEnum
	typ        reflect.Type
	components []*ColumnType
}

// Shape returns the structural shape.
func (t *ColumnType) Shape() ShapeEnum { return t.shape }

// Type returns the domain-side Go representation type.
func (t *ColumnType) Type() reflect.Type { return t.typ }

// IsCollectionLike reports whether the type is a list, set or map.
func (t *ColumnType) IsCollectionLike() bool {
	return t.shape == ShapeList || t.shape == ShapeSet || t.shape == ShapeMap
}

func (t *ColumnType) IsList() bool { return t.shape == ShapeList }
func (t *ColumnType) IsSet() bool  { return t.shape == ShapeSet }
func (t *ColumnType) IsMap() bool  { return t.shape == ShapeMap }

// ComponentType returns the first component type: the element of a
// list/set, the key of a map, the first field of a tuple/UDT. Nil for
// scalars.
func (t *ColumnType) ComponentType() *ColumnType {
	first, _ := common.First(t.components)
	return first
}

// MapValueType returns the second component, the value type of a map.
// Nil for every other shape.
func (t *ColumnType) MapValueType() *ColumnType {
	if t.shape != ShapeMap || len(t.components) < 2 {
		return nil
	}

	return t.components[1]
}

// Components returns all component types in order. Callers must not
// modify the returned slice.
func (t *ColumnType) Components() []*ColumnType { return t.components }

func (t *ColumnType) String() string {
	if t.shape == ShapeScalar {
		return typeName(t.typ)
	}

	parts := make([]string, len(t.components))
	for i, c := range t.components {
		parts[i] = c.String()
	}

	return fmt.Sprintf("%s[%s]", strings.TrimPrefix(t.shape.String(), "Shape"), strings.Join(parts, ", "))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// CassandraColumnType pairs a ColumnType with the driver-native
// descriptor used for codec selection. The tuple/UDT predicates are
// always derived from the native type, never stored.
type CassandraColumnType struct {
	ColumnType
	native *cqltype.NativeType
}

// NativeType returns the driver-native type descriptor.
func (t *CassandraColumnType) NativeType() *cqltype.NativeType { return t.native }

// IsTupleType reports whether the native type is a tuple.
func (t *CassandraColumnType) IsTupleType() bool {
	return t.native != nil && t.native.Kind() == cqltype.KindTuple
}

// IsUserDefinedType reports whether the native type is a UDT.
func (t *CassandraColumnType) IsUserDefinedType() bool {
	return t.native != nil && t.native.Kind() == cqltype.KindUDT
}

// UDTField pairs a field name with its resolved column type.
type UDTField struct {
	Name string
	Type *CassandraColumnType
}

// Scalar builds a scalar column type.
func Scalar(goType reflect.Type, native *cqltype.NativeType) *CassandraColumnType {
	return newCassandraType(ShapeScalar, goType, native)
}

// ListOf builds a list column type over one element type.
func ListOf(goType reflect.Type, elem *CassandraColumnType) *CassandraColumnType {
	return newCassandraType(ShapeList, goType, cqltype.ListOf(elem.native), elem)
}

// SetOf builds a set column type over one element type.
func SetOf(goType reflect.Type, elem *CassandraColumnType) *CassandraColumnType {
	return newCassandraType(ShapeSet, goType, cqltype.SetOf(elem.native), elem)
}

// MapOf builds a map column type over a key and a value type, in that
// order.
func MapOf(goType reflect.Type, key, value *CassandraColumnType) *CassandraColumnType {
	return newCassandraType(ShapeMap, goType, cqltype.MapOf(key.native, value.native), key, value)
}

// TupleOf builds a tuple column type over its positional element types.
func TupleOf(goType reflect.Type, elems ...*CassandraColumnType) *CassandraColumnType {
	natives := make([]*cqltype.NativeType, len(elems))
	for i, e := range elems {
		natives[i] = e.native
	}

	return newCassandraType(ShapeTuple, goType, cqltype.TupleOf(natives...), elems...)
}

// UDTOf builds a user-defined column type from named fields in schema
// order.
func UDTOf(goType reflect.Type, udtName string, fields ...UDTField) *CassandraColumnType {
	natives := make([]cqltype.UDTField, len(fields))
	comps := make([]*CassandraColumnType, len(fields))

	for i, f := range fields {
		natives[i] = cqltype.UDTField{Name: f.Name, Type: f.Type.native}
		comps[i] = f.Type
	}

	return newCassandraType(ShapeUserDefined, goType, cqltype.UDTOf(udtName, natives...), comps...)
}

func newCassandraType(
	shape ShapeEnum,
	goType reflect.Type,
	native *cqltype.NativeType,
	comps ...*CassandraColumnType,
) *CassandraColumnType {
	if want := shape.componentCount(); want >= 0 && len(comps) != want {
		panic(fmt.Sprintf("coltype: %s requires %d component types, got %d", shape, want, len(comps)))
	}

	components := make([]*ColumnType, len(comps))
	for i, c := range comps {
		components[i] = &c.ColumnType
	}

	return &CassandraColumnType{
		ColumnType: ColumnType{shape: shape, typ: goType, components: components},
		native:     native,
	}
}
