// Package coltype provides the immutable column type model: a recursive
// descriptor pairing a structural shape (scalar, list, set, map, tuple,
// user-defined) with the Go representation type and, for Cassandra, the
// driver-native type descriptor used to select codecs.
package coltype
