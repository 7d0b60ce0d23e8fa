package cqltype

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindAscii
	KindBigint
	KindBlob
	KindBoolean
	KindCounter
	KindDecimal
	KindDouble
	KindFloat
	KindInt
	KindSmallint
	KindTinyint
	KindText
	KindVarchar
	KindTimestamp
	KindDate
	KindTime
	KindDuration
	KindUUID
	KindTimeUUID
	KindInet
	KindVarint
	KindVector
	KindList
	KindSet
	KindMap
	KindTuple
	KindUDT

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsCollection reports whether the kind is a list, set or map.
func (k KindEnum) IsCollection() bool {
	switch k {
	default:
		return false
	case KindList, KindSet, KindMap:
		return true
	}
}

// IsComposite reports whether the kind carries nested component types of
// any sort, including tuples, UDTs and vectors.
func (k KindEnum) IsComposite() bool {
	switch k {
	default:
		return false
	case KindList, KindSet, KindMap, KindTuple, KindUDT, KindVector:
		return true
	}
}

// IsScalar reports whether the kind stands on its own, without component
// types.
func (k KindEnum) IsScalar() bool {
	return k > 0 && int(k) < KindTotal && !k.IsComposite()
}

// CQLName returns the name of the kind as written in CQL schemas.
func (k KindEnum) CQLName() string {
	name, ok := cqlNames[k]
	if !ok {
		return "unknown"
	}

	return name
}

var cqlNames = map[KindEnum]string{
	KindAscii:     "ascii",
	KindBigint:    "bigint",
	KindBlob:      "blob",
	KindBoolean:   "boolean",
	KindCounter:   "counter",
	KindDecimal:   "decimal",
	KindDouble:    "double",
	KindFloat:     "float",
	KindInt:       "int",
	KindSmallint:  "smallint",
	KindTinyint:   "tinyint",
	KindText:      "text",
	KindVarchar:   "varchar",
	KindTimestamp: "timestamp",
	KindDate:      "date",
	KindTime:      "time",
	KindDuration:  "duration",
	KindUUID:      "uuid",
	KindTimeUUID:  "timeuuid",
	KindInet:      "inet",
	KindVarint:    "varint",
	KindVector:    "vector",
	KindList:      "list",
	KindSet:       "set",
	KindMap:       "map",
	KindTuple:     "tuple",
	KindUDT:       "udt",
}
