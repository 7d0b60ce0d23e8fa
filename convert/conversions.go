package convert

import (
	"math/big"
	"net"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"

	"cassmap/cqltime"
)

// simpleTypes is the fixed base table of domain types that map onto a
// native scalar column type without any conversion.
var simpleTypes = map[reflect.Type]struct{}{
	reflect.TypeFor[int8]():             {},
	reflect.TypeFor[int16]():            {},
	reflect.TypeFor[int32]():            {},
	reflect.TypeFor[int64]():            {},
	reflect.TypeFor[int]():              {},
	reflect.TypeFor[float32]():          {},
	reflect.TypeFor[float64]():          {},
	reflect.TypeFor[bool]():             {},
	reflect.TypeFor[string]():           {},
	reflect.TypeFor[[]byte]():           {},
	reflect.TypeFor[uuid.UUID]():        {},
	reflect.TypeFor[time.Time]():        {},
	reflect.TypeFor[cqltime.Date]():     {},
	reflect.TypeFor[cqltime.Time]():     {},
	reflect.TypeFor[cqltime.Duration](): {},
	reflect.TypeFor[net.IP]():           {},
	reflect.TypeFor[*big.Int]():         {},
	reflect.TypeFor[*inf.Dec]():         {},
	reflect.TypeFor[[]float32]():        {},
}

// Config carries the user-supplied converters layered on top of the
// built-in ones.
type Config struct {
	Converters []Converter
}

// CustomConversions is the central authority on which domain types are
// simple and which converters apply. The converter set is fixed at
// construction; instances are safe for unsynchronized concurrent use.
type CustomConversions struct {
	converters   map[ConvertiblePair]Converter
	writeTargets map[reflect.Type]reflect.Type
}

// New builds a registry from built-in converters plus cfg.Converters.
// Pairs rejected by the temporal filter are dropped here, once; they are
// never consulted again.
func New(cfg Config) *CustomConversions {
	c := &CustomConversions{
		converters:   make(map[ConvertiblePair]Converter),
		writeTargets: make(map[reflect.Type]reflect.Type),
	}

	for _, conv := range builtinConverters() {
		c.register(conv)
	}

	for _, conv := range cfg.Converters {
		c.register(conv)
	}

	return c
}

func (c *CustomConversions) register(conv Converter) {
	pair := conv.Pair()
	if shadowsTemporal(pair) {
		return
	}

	c.converters[pair] = conv

	// a converter from a complex type into the base table makes the
	// source storable: record its write target
	_, srcSimple := simpleTypes[pair.Source]
	_, dstSimple := simpleTypes[pair.Target]
	if !srcSimple && dstSimple {
		if _, taken := c.writeTargets[pair.Source]; !taken {
			c.writeTargets[pair.Source] = pair.Target
		}
	}
}

// IsSimpleType reports whether the type is directly representable by a
// native scalar type, either via the base table or via a registered,
// non-filtered converter into it.
func (c *CustomConversions) IsSimpleType(t reflect.Type) bool {
	if _, ok := simpleTypes[t]; ok {
		return true
	}

	_, ok := c.writeTargets[t]
	return ok
}

// ConverterFor returns the registered converter for the pair, if any.
// Filtered pairs are never returned.
func (c *CustomConversions) ConverterFor(src, dst reflect.Type) (Converter, bool) {
	conv, ok := c.converters[ConvertiblePair{Source: src, Target: dst}]
	return conv, ok
}

// WriteTarget returns the base-table type a complex type is stored as,
// when a converter makes it storable. For base-table types the type
// itself is returned.
func (c *CustomConversions) WriteTarget(t reflect.Type) (reflect.Type, bool) {
	if _, ok := simpleTypes[t]; ok {
		return t, true
	}

	target, ok := c.writeTargets[t]
	return target, ok
}

var timeTimeType = reflect.TypeFor[time.Time]()

// temporalFamilies are the package namespaces whose types the system
// stores natively. A user converter reading FROM one of these would
// shadow native temporal handling and silently degrade precision or zone
// information, so such pairs are rejected outright.
var temporalFamilies = map[string]struct{}{
	"time":            {},
	"cassmap/cqltime": {},
}

// timeSource is the accessor shared by temporal-library value types; a
// type exposing it is treated as temporal even when it lives outside the
// known families.
type timeSource interface {
	Time() time.Time
}

var timeSourceType = reflect.TypeFor[timeSource]()

// shadowsTemporal implements the converter-pair filter: reject when the
// source belongs to a natively-handled temporal namespace, or when the
// source is a temporal-library type and the target is time.Time.
func shadowsTemporal(p ConvertiblePair) bool {
	src := p.Source
	for src.Kind() == reflect.Ptr {
		src = src.Elem()
	}

	if _, banned := temporalFamilies[src.PkgPath()]; banned {
		return true
	}

	if p.Source.Implements(timeSourceType) && p.Target == timeTimeType {
		return true
	}

	return false
}
