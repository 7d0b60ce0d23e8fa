package entity

import (
	"reflect"

	"cassmap/cqltype"
)

type AnnotationEnum int

const (
	_ AnnotationEnum = iota // skip zero value, use it as a default (invalid) value for AnnotationEnum

	AnnotationColumn  // explicit column name
	AnnotationElement // explicit tuple ordinal
	AnnotationType    // explicit native type override

	// AnnotationTotal is a constant that represents the total number of annotations defined
	AnnotationTotal = int(iota)
)

// NoOrdinal marks a property without a tuple position.
const NoOrdinal = -1

// Property is the read-only capability the core consumes for each domain
// property. Implementations must be safe for concurrent reads.
type Property interface {
	// Name is the domain-side property name.
	Name() string
	// Type is the declared Go type of the property.
	Type() reflect.Type
	// TypeSpec returns the explicit native-type annotation, or nil.
	TypeSpec() *TypeSpec
	// Ordinal returns the tuple position, or NoOrdinal.
	Ordinal() int
	// ColumnName returns the column the property is bound to. Defaults
	// to the property name for implementations without an override.
	ColumnName() string
	// Expression returns the dynamic expression, empty when absent.
	Expression() string
	// HasAnnotation reports whether the given annotation is present.
	HasAnnotation(kind AnnotationEnum) bool
}

// TypeSpec is an explicit native-type annotation on a property. It
// bypasses generic-type inference entirely: Kind names the column type
// and Arguments carry element/value kinds for collection kinds.
type TypeSpec struct {
	Kind      cqltype.KindEnum
	Arguments []cqltype.KindEnum
	// UserTypeName names the UDT when Kind is KindUDT.
	UserTypeName string
}

// SimpleProperty is a plain value implementation of Property, convenient
// for metadata adapters and tests.
type SimpleProperty struct {
	PropName   string
	PropType   reflect.Type
	Spec       *TypeSpec
	TupleIndex int // NoOrdinal when the property is not tuple-addressed
	Column     string
	Expr       string
}

// NewSimpleProperty builds a column-addressed property with no
// annotations; the column name defaults to the property name.
func NewSimpleProperty(name string, typ reflect.Type) *SimpleProperty {
	return &SimpleProperty{PropName: name, PropType: typ, TupleIndex: NoOrdinal}
}

func (p *SimpleProperty) Name() string        { return p.PropName }
func (p *SimpleProperty) Type() reflect.Type  { return p.PropType }
func (p *SimpleProperty) TypeSpec() *TypeSpec { return p.Spec }
func (p *SimpleProperty) Ordinal() int        { return p.TupleIndex }
func (p *SimpleProperty) Expression() string  { return p.Expr }

func (p *SimpleProperty) ColumnName() string {
	if p.Column != "" {
		return p.Column
	}

	return p.PropName
}

func (p *SimpleProperty) HasAnnotation(kind AnnotationEnum) bool {
	switch kind {
	case AnnotationColumn:
		return p.Column != ""
	case AnnotationElement:
		return p.TupleIndex != NoOrdinal
	case AnnotationType:
		return p.Spec != nil
	default:
		return false
	}
}
