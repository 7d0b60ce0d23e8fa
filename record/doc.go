// Package record extracts correctly-typed values from structured driver
// records: rows, tuples and UDT values.
//
// Readers dispatch on the column's native shape: list/set elements are
// re-typed through the codec registry, maps are returned as the driver's
// raw associative value, tuples and UDTs are returned as nested records.
// Providers wrap a reader plus an expression evaluator and answer the
// per-property questions the object-construction layer asks. All types
// here are read-only views over an already-materialized record; no I/O
// happens in this package.
package record
