package cqltype

import (
	"fmt"
	"math/big"
	"net"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"

	"cassmap/cqltime"
)

// NativeType is the driver-side descriptor of a column type. It is
// immutable once constructed and freely shared; composite constructors
// never copy their components.
type NativeType struct {
	kind    KindEnum
	elem    *NativeType // list/set/vector element
	key     *NativeType // map key
	value   *NativeType // map value
	elems   []*NativeType
	fields  []UDTField
	udtName string
	dims    int
}

// UDTField is a named field of a user-defined type, in schema order.
type UDTField struct {
	Name string
	Type *NativeType
}

// Scalar singletons. Composite types are built with the *Of constructors.
var (
	Ascii     = &NativeType{kind: KindAscii}
	Bigint    = &NativeType{kind: KindBigint}
	Blob      = &NativeType{kind: KindBlob}
	Boolean   = &NativeType{kind: KindBoolean}
	Counter   = &NativeType{kind: KindCounter}
	Decimal   = &NativeType{kind: KindDecimal}
	Double    = &NativeType{kind: KindDouble}
	Float     = &NativeType{kind: KindFloat}
	Int       = &NativeType{kind: KindInt}
	Smallint  = &NativeType{kind: KindSmallint}
	Tinyint   = &NativeType{kind: KindTinyint}
	Text      = &NativeType{kind: KindText}
	Varchar   = &NativeType{kind: KindVarchar}
	Timestamp = &NativeType{kind: KindTimestamp}
	Date      = &NativeType{kind: KindDate}
	Time      = &NativeType{kind: KindTime}
	Duration  = &NativeType{kind: KindDuration}
	UUID      = &NativeType{kind: KindUUID}
	TimeUUID  = &NativeType{kind: KindTimeUUID}
	Inet      = &NativeType{kind: KindInet}
	Varint    = &NativeType{kind: KindVarint}
)

var scalars = map[KindEnum]*NativeType{
	KindAscii:     Ascii,
	KindBigint:    Bigint,
	KindBlob:      Blob,
	KindBoolean:   Boolean,
	KindCounter:   Counter,
	KindDecimal:   Decimal,
	KindDouble:    Double,
	KindFloat:     Float,
	KindInt:       Int,
	KindSmallint:  Smallint,
	KindTinyint:   Tinyint,
	KindText:      Text,
	KindVarchar:   Varchar,
	KindTimestamp: Timestamp,
	KindDate:      Date,
	KindTime:      Time,
	KindDuration:  Duration,
	KindUUID:      UUID,
	KindTimeUUID:  TimeUUID,
	KindInet:      Inet,
	KindVarint:    Varint,
}

// Scalar returns the singleton descriptor for a scalar kind, or nil for
// composite and invalid kinds.
func Scalar(kind KindEnum) *NativeType {
	return scalars[kind]
}

// ListOf builds a list type over the given element type.
func ListOf(elem *NativeType) *NativeType {
	return &NativeType{kind: KindList, elem: elem}
}

// SetOf builds a set type over the given element type.
func SetOf(elem *NativeType) *NativeType {
	return &NativeType{kind: KindSet, elem: elem}
}

// MapOf builds a map type over the given key and value types.
func MapOf(key, value *NativeType) *NativeType {
	return &NativeType{kind: KindMap, key: key, value: value}
}

// TupleOf builds a tuple type over the given element types, in order.
func TupleOf(elems ...*NativeType) *NativeType {
	return &NativeType{kind: KindTuple, elems: elems}
}

// UDTOf builds a user-defined type descriptor. Fields may be empty when
// only the name is known (e.g. parsed from a schema reference).
func UDTOf(name string, fields ...UDTField) *NativeType {
	return &NativeType{kind: KindUDT, udtName: name, fields: fields}
}

// VectorOf builds a fixed-dimension vector type. Zero dimensions means
// the dimension is not known.
func VectorOf(elem *NativeType, dims int) *NativeType {
	return &NativeType{kind: KindVector, elem: elem, dims: dims}
}

func (t *NativeType) Kind() KindEnum { return t.kind }

// Elem returns the element type of a list, set or vector, or nil.
func (t *NativeType) Elem() *NativeType { return t.elem }

// Key returns the key type of a map, or nil.
func (t *NativeType) Key() *NativeType { return t.key }

// Value returns the value type of a map, or nil.
func (t *NativeType) Value() *NativeType { return t.value }

// Elems returns the element types of a tuple, or nil.
func (t *NativeType) Elems() []*NativeType { return t.elems }

// Fields returns the fields of a user-defined type, or nil.
func (t *NativeType) Fields() []UDTField { return t.fields }

// UDTName returns the schema name of a user-defined type.
func (t *NativeType) UDTName() string { return t.udtName }

// Dimensions returns the declared dimension of a vector, zero if unknown.
func (t *NativeType) Dimensions() int { return t.dims }

// FieldIndex returns the position of a UDT field by identifier matching,
// or -1 when the type has no such field.
func (t *NativeType) FieldIndex(name string) int {
	for i, f := range t.fields {
		if NewIdentifier(f.Name).Equal(name) {
			return i
		}
	}

	return -1
}

// GoType returns the default decoded Go representation for the type.
func (t *NativeType) GoType() reflect.Type {
	switch t.kind {
	case KindAscii, KindText, KindVarchar:
		return reflect.TypeFor[string]()
	case KindBigint, KindCounter:
		return reflect.TypeFor[int64]()
	case KindBlob:
		return reflect.TypeFor[[]byte]()
	case KindBoolean:
		return reflect.TypeFor[bool]()
	case KindDecimal:
		return reflect.TypeFor[*inf.Dec]()
	case KindDouble:
		return reflect.TypeFor[float64]()
	case KindFloat:
		return reflect.TypeFor[float32]()
	case KindInt:
		return reflect.TypeFor[int32]()
	case KindSmallint:
		return reflect.TypeFor[int16]()
	case KindTinyint:
		return reflect.TypeFor[int8]()
	case KindTimestamp:
		return reflect.TypeFor[time.Time]()
	case KindDate:
		return reflect.TypeFor[cqltime.Date]()
	case KindTime:
		return reflect.TypeFor[cqltime.Time]()
	case KindDuration:
		return reflect.TypeFor[cqltime.Duration]()
	case KindUUID, KindTimeUUID:
		return reflect.TypeFor[uuid.UUID]()
	case KindInet:
		return reflect.TypeFor[net.IP]()
	case KindVarint:
		return reflect.TypeFor[*big.Int]()
	case KindVector:
		return reflect.TypeFor[[]float32]()
	case KindList, KindSet, KindTuple:
		return reflect.TypeFor[[]any]()
	case KindMap:
		return reflect.TypeFor[map[any]any]()
	case KindUDT:
		return reflect.TypeFor[map[string]any]()
	default:
		return reflect.TypeFor[any]()
	}
}

// String renders the type the way it is written in CQL schemas.
func (t *NativeType) String() string {
	switch t.kind {
	case KindList, KindSet:
		return fmt.Sprintf("%s<%s>", t.kind.CQLName(), t.elem)
	case KindMap:
		return fmt.Sprintf("map<%s, %s>", t.key, t.value)
	case KindVector:
		if t.dims > 0 {
			return fmt.Sprintf("vector<%s, %d>", t.elem, t.dims)
		}

		return fmt.Sprintf("vector<%s>", t.elem)
	case KindTuple:
		parts := make([]string, len(t.elems))
		for i, e := range t.elems {
			parts[i] = e.String()
		}

		return "tuple<" + strings.Join(parts, ", ") + ">"
	case KindUDT:
		return t.udtName
	default:
		return t.kind.CQLName()
	}
}
