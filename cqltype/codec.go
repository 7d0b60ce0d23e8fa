package cqltype

import (
	"errors"
	"fmt"
	"math/big"
	"net"
	"time"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"

	"cassmap/cqltime"
)

// Codec normalizes a driver-decoded value into the canonical Go
// representation of a scalar kind. Codecs never touch the wire format;
// they only reconcile the handful of raw shapes a driver may hand over
// (e.g. a uuid as a string, a timestamp as epoch milliseconds).
type Codec interface {
	Kind() KindEnum
	Decode(raw any) (any, error)
}

// CodecRegistry resolves the codec to use for a native type.
type CodecRegistry interface {
	CodecFor(t *NativeType) (Codec, error)
}

// ErrNoCodec is returned when a registry has no codec for the requested
// native type.
var ErrNoCodec = errors.New("cqltype: no codec registered for native type")

type scalarCodec struct {
	kind   KindEnum
	decode func(raw any) (any, error)
}

func (c scalarCodec) Kind() KindEnum { return c.kind }

func (c scalarCodec) Decode(raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	return c.decode(raw)
}

// DefaultRegistry holds one codec per scalar kind. The zero value is not
// usable; construct with NewDefaultRegistry.
type DefaultRegistry struct {
	codecs map[KindEnum]Codec
}

// NewDefaultRegistry builds a registry covering every scalar kind.
func NewDefaultRegistry() *DefaultRegistry {
	r := &DefaultRegistry{codecs: make(map[KindEnum]Codec, KindTotal)}
	for _, c := range builtinCodecs() {
		r.codecs[c.Kind()] = c
	}

	return r
}

// Register replaces the codec for its kind. Intended for wiring driver
// specific codecs before the registry is shared; registries must not be
// mutated once readers use them.
func (r *DefaultRegistry) Register(c Codec) {
	r.codecs[c.Kind()] = c
}

// CodecFor returns the codec for a scalar native type.
func (r *DefaultRegistry) CodecFor(t *NativeType) (Codec, error) {
	if c, ok := r.codecs[t.Kind()]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoCodec, t)
}

func builtinCodecs() []Codec {
	return []Codec{
		stringCodec(KindAscii),
		stringCodec(KindText),
		stringCodec(KindVarchar),
		int64Codec(KindBigint),
		int64Codec(KindCounter),
		scalarCodec{KindBlob, decodeBlob},
		scalarCodec{KindBoolean, decodeBool},
		scalarCodec{KindDecimal, decodeDecimal},
		scalarCodec{KindDouble, decodeDouble},
		scalarCodec{KindFloat, decodeFloat},
		scalarCodec{KindInt, decodeInt32},
		scalarCodec{KindSmallint, decodeInt16},
		scalarCodec{KindTinyint, decodeInt8},
		scalarCodec{KindTimestamp, decodeTimestamp},
		scalarCodec{KindDate, decodeDate},
		scalarCodec{KindTime, decodeTime},
		scalarCodec{KindDuration, decodeDuration},
		uuidCodec(KindUUID),
		uuidCodec(KindTimeUUID),
		scalarCodec{KindInet, decodeInet},
		scalarCodec{KindVarint, decodeVarint},
	}
}

func stringCodec(kind KindEnum) Codec {
	return scalarCodec{kind, func(raw any) (any, error) {
		switch v := raw.(type) {
		case string:
			return v, nil
		case []byte:
			return string(v), nil
		}

		return nil, decodeError(kind, raw)
	}}
}

func int64Codec(kind KindEnum) Codec {
	return scalarCodec{kind, func(raw any) (any, error) {
		switch v := raw.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		}

		return nil, decodeError(kind, raw)
	}}
}

func uuidCodec(kind KindEnum) Codec {
	return scalarCodec{kind, func(raw any) (any, error) {
		switch v := raw.(type) {
		case uuid.UUID:
			return v, nil
		case [16]byte:
			return uuid.UUID(v), nil
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("cqltype: %s: %w", kind.CQLName(), err)
			}

			return id, nil
		}

		return nil, decodeError(kind, raw)
	}}
}

func decodeBlob(raw any) (any, error) {
	if v, ok := raw.([]byte); ok {
		return v, nil
	}

	return nil, decodeError(KindBlob, raw)
}

func decodeBool(raw any) (any, error) {
	if v, ok := raw.(bool); ok {
		return v, nil
	}

	return nil, decodeError(KindBoolean, raw)
}

func decodeDecimal(raw any) (any, error) {
	switch v := raw.(type) {
	case *inf.Dec:
		return v, nil
	case string:
		if d, ok := new(inf.Dec).SetString(v); ok {
			return d, nil
		}
	}

	return nil, decodeError(KindDecimal, raw)
}

func decodeDouble(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	}

	return nil, decodeError(KindDouble, raw)
}

func decodeFloat(raw any) (any, error) {
	if v, ok := raw.(float32); ok {
		return v, nil
	}

	return nil, decodeError(KindFloat, raw)
}

func decodeInt32(raw any) (any, error) {
	switch v := raw.(type) {
	case int32:
		return v, nil
	case int:
		return narrow[int32](KindInt, int64(v))
	case int64:
		return narrow[int32](KindInt, v)
	}

	return nil, decodeError(KindInt, raw)
}

func decodeInt16(raw any) (any, error) {
	switch v := raw.(type) {
	case int16:
		return v, nil
	case int:
		return narrow[int16](KindSmallint, int64(v))
	}

	return nil, decodeError(KindSmallint, raw)
}

func decodeInt8(raw any) (any, error) {
	switch v := raw.(type) {
	case int8:
		return v, nil
	case int:
		return narrow[int8](KindTinyint, int64(v))
	}

	return nil, decodeError(KindTinyint, raw)
}

// narrow converts a wider raw integer to the kind's width, rejecting
// values the target type cannot hold.
func narrow[T int8 | int16 | int32](kind KindEnum, v int64) (any, error) {
	if int64(T(v)) != v {
		return nil, fmt.Errorf("cqltype: value %d overflows %s", v, kind.CQLName())
	}

	return T(v), nil
}

func decodeTimestamp(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case int64: // epoch milliseconds, the wire unit of timestamp
		return time.UnixMilli(v).UTC(), nil
	}

	return nil, decodeError(KindTimestamp, raw)
}

func decodeDate(raw any) (any, error) {
	switch v := raw.(type) {
	case cqltime.Date:
		return v, nil
	case time.Time:
		return cqltime.DateOf(v), nil
	case string:
		d, err := cqltime.ParseDate(v)
		if err != nil {
			return nil, err
		}

		return d, nil
	}

	return nil, decodeError(KindDate, raw)
}

func decodeTime(raw any) (any, error) {
	switch v := raw.(type) {
	case cqltime.Time:
		return v, nil
	case int64:
		t := cqltime.Time(v)
		if !t.Valid() {
			return nil, fmt.Errorf("cqltype: value %d ns is outside a single day", v)
		}

		return t, nil
	case string:
		t, err := cqltime.ParseTime(v)
		if err != nil {
			return nil, err
		}

		return t, nil
	}

	return nil, decodeError(KindTime, raw)
}

func decodeDuration(raw any) (any, error) {
	switch v := raw.(type) {
	case cqltime.Duration:
		return v, nil
	case string:
		d, err := cqltime.ParseDuration(v)
		if err != nil {
			return nil, err
		}

		return d, nil
	}

	return nil, decodeError(KindDuration, raw)
}

func decodeInet(raw any) (any, error) {
	switch v := raw.(type) {
	case net.IP:
		return v, nil
	case string:
		if ip := net.ParseIP(v); ip != nil {
			return ip, nil
		}
	}

	return nil, decodeError(KindInet, raw)
}

func decodeVarint(raw any) (any, error) {
	switch v := raw.(type) {
	case *big.Int:
		return v, nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	}

	return nil, decodeError(KindVarint, raw)
}

func decodeError(kind KindEnum, raw any) error {
	return fmt.Errorf("cqltype: cannot decode %T as %s", raw, kind.CQLName())
}
