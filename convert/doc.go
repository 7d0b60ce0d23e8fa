// Package convert implements the custom conversion registry: the fixed
// base table of database-simple types, bidirectional user converters
// layered over the built-in date/time set, and the pair filter that
// rejects converters shadowing native temporal handling.
//
// A type is "simple" when it is in the base table or a registered,
// non-filtered converter maps it into the base table. Everything is
// fixed at construction; a CustomConversions value is safe for
// unsynchronized concurrent use.
package convert
