package entity

import "errors"

// ErrReadOnlyProperty is returned by every mutating call on a
// ParameterProperty.
var ErrReadOnlyProperty = errors.New("entity: parameter-backed property is read-only")

// ParameterOverrides carries the per-constructor-parameter annotations
// that take precedence over the wrapped property's own metadata. A nil
// field means "no override".
type ParameterOverrides struct {
	ColumnName *string
	Ordinal    *int
}

// ParameterProperty is a read-only delegation wrapper for properties
// bound through constructor parameters: it intercepts exactly ColumnName
// and Ordinal when the corresponding parameter annotation is present and
// passes every other query through to the wrapped property untouched.
type ParameterProperty struct {
	Property
	overrides ParameterOverrides
}

// WrapParameter wraps a property with parameter-level overrides.
func WrapParameter(p Property, overrides ParameterOverrides) *ParameterProperty {
	return &ParameterProperty{Property: p, overrides: overrides}
}

func (p *ParameterProperty) ColumnName() string {
	if p.overrides.ColumnName != nil {
		return *p.overrides.ColumnName
	}

	return p.Property.ColumnName()
}

func (p *ParameterProperty) Ordinal() int {
	if p.overrides.Ordinal != nil {
		return *p.overrides.Ordinal
	}

	return p.Property.Ordinal()
}

func (p *ParameterProperty) HasAnnotation(kind AnnotationEnum) bool {
	switch {
	case kind == AnnotationColumn && p.overrides.ColumnName != nil:
		return true
	case kind == AnnotationElement && p.overrides.Ordinal != nil:
		return true
	}

	return p.Property.HasAnnotation(kind)
}

// SetColumnName is unsupported: the wrapper is read-only by construction.
func (p *ParameterProperty) SetColumnName(string) error {
	return ErrReadOnlyProperty
}

// SetForceQuote is unsupported: the wrapper is read-only by construction.
func (p *ParameterProperty) SetForceQuote(bool) error {
	return ErrReadOnlyProperty
}
