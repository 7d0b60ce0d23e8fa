// Package resolve maps domain types, properties, annotations and runtime
// values to Cassandra column types.
//
// Four entry points funnel into one canonical algorithm:
//   - ResolveProperty: explicit type annotation wins, otherwise the
//     declared Go type is inferred
//   - ResolveType: simple types map to native scalars, collections/maps
//     recurse over their components, registered structs become
//     tuples/UDTs
//   - ResolveSpec: builds the type straight from an annotation, bypassing
//     inference
//   - ResolveValue: inspects a runtime value structurally; nil falls back
//     to the unknown/object default
package resolve
