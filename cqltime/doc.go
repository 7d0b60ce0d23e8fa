// Package cqltime provides value types for the Cassandra native temporal
// types that have no direct Go equivalent: date (a calendar day without a
// time zone), time (a clock time without a date) and duration (a
// months/days/nanoseconds triple).
//
// All three are plain value types with parse/format support. Conversions
// to and from time.Time are lossy by definition (a Date has no clock, a
// Time has no calendar) and are therefore explicit methods, never implicit.
package cqltime
