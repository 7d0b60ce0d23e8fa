// Package cqltype models the driver-side Cassandra type system: a closed
// set of native kinds, an immutable recursive NativeType descriptor, the
// case/quoting rules for CQL identifiers, a parser for CQL type strings,
// and the codec capability used to normalize driver-decoded scalar values.
//
// Key types:
//   - KindEnum: closed enum of native kinds (scalar + list/set/map/tuple/udt/vector)
//   - NativeType: immutable descriptor with nested components
//   - Identifier: case/quoting-aware column identifier
//   - Codec / CodecRegistry: per-kind value normalization capability
package cqltype
