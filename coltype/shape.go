package coltype

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum is the closed set of structural shapes a column type can
// have. A new native shape must be added here deliberately; readers treat
// anything outside the set as an internal invariant violation.
type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, use it as a default (invalid) value for ShapeEnum

	ShapeScalar
	ShapeList
	ShapeSet
	ShapeMap
	ShapeTuple
	ShapeUserDefined

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// componentCount returns the number of component types the shape
// requires; -1 means any positive count (tuple/UDT fields).
func (s ShapeEnum) componentCount() int {
	switch s {
	case ShapeScalar:
		return 0
	case ShapeList, ShapeSet:
		return 1
	case ShapeMap:
		return 2
	case ShapeTuple, ShapeUserDefined:
		return -1
	default:
		return 0
	}
}
