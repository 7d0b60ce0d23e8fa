package record

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrColumnNotFound marks a schema mismatch: the requested column
	// name does not exist in the record. This is a mapping/programmer
	// error and is never silently turned into a null.
	ErrColumnNotFound = errors.New("record: column not found in schema")

	// ErrIndexOutOfRange marks an index outside the record's slots.
	ErrIndexOutOfRange = errors.New("record: column index out of range")

	// ErrUnknownShape marks a native type outside the closed shape set.
	// It is an internal invariant violation, not a user-facing data
	// condition: the type system grew a case this layer does not know.
	ErrUnknownShape = errors.New("record: native type outside the known shape set")
)

// CastError reports a typed read whose decoded value is not assignment
// compatible with the requested type.
type CastError struct {
	Index int
	Value any
	Want  reflect.Type
}

func (e *CastError) Error() string {
	return fmt.Sprintf("record: column %d holds %T, not assignable to %s", e.Index, e.Value, e.Want)
}
