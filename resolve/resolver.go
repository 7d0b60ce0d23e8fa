package resolve

import (
	"errors"
	"fmt"
	"math/big"
	"net"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gopkg.in/inf.v0"

	"cassmap/coltype"
	"cassmap/convert"
	"cassmap/cqltime"
	"cassmap/cqltype"
	"cassmap/entity"
)

// ErrUnresolvable is wrapped by every mapping failure: the type has no
// simple-type match, no registered converter and no recognized composite
// shape.
var ErrUnresolvable = errors.New("resolve: no column type mapping")

// nativeForSimple maps every base-table simple type to its native scalar
// descriptor. Complex types reach it through their conversion write
// target.
var nativeForSimple = map[reflect.Type]*cqltype.NativeType{
	reflect.TypeFor[int8]():             cqltype.Tinyint,
	reflect.TypeFor[int16]():            cqltype.Smallint,
	reflect.TypeFor[int32]():            cqltype.Int,
	reflect.TypeFor[int64]():            cqltype.Bigint,
	reflect.TypeFor[int]():              cqltype.Bigint,
	reflect.TypeFor[float32]():          cqltype.Float,
	reflect.TypeFor[float64]():          cqltype.Double,
	reflect.TypeFor[bool]():             cqltype.Boolean,
	reflect.TypeFor[string]():           cqltype.Text,
	reflect.TypeFor[[]byte]():           cqltype.Blob,
	reflect.TypeFor[uuid.UUID]():        cqltype.UUID,
	reflect.TypeFor[time.Time]():        cqltype.Timestamp,
	reflect.TypeFor[cqltime.Date]():     cqltype.Date,
	reflect.TypeFor[cqltime.Time]():     cqltype.Time,
	reflect.TypeFor[cqltime.Duration](): cqltype.Duration,
	reflect.TypeFor[net.IP]():           cqltype.Inet,
	reflect.TypeFor[*big.Int]():         cqltype.Varint,
	reflect.TypeFor[*inf.Dec]():         cqltype.Decimal,
	reflect.TypeFor[[]float32]():        cqltype.VectorOf(cqltype.Float, 0),
}

var emptyStruct = reflect.TypeFor[struct{}]()

// Config wires a resolver. Tuple and UDT registrations are fixed at
// construction; the resolver is immutable afterwards.
type Config struct {
	Conversions *convert.CustomConversions
	// Tuples lists struct types resolved as positional tuples.
	Tuples []reflect.Type
	// UDTs maps struct types to their schema-side user type name.
	UDTs map[reflect.Type]string
}

// ColumnTypeResolver resolves domain types to Cassandra column types.
type ColumnTypeResolver struct {
	conversions *convert.CustomConversions
	tuples      map[reflect.Type]struct{}
	udts        map[reflect.Type]string
}

// New builds a resolver. A nil Conversions falls back to the built-in
// registry.
func New(cfg Config) *ColumnTypeResolver {
	conversions := cfg.Conversions
	if conversions == nil {
		conversions = convert.New(convert.Config{})
	}

	tuples := make(map[reflect.Type]struct{}, len(cfg.Tuples))
	for _, t := range cfg.Tuples {
		tuples[t] = struct{}{}
	}

	udts := make(map[reflect.Type]string, len(cfg.UDTs))
	for t, name := range cfg.UDTs {
		udts[t] = name
	}

	return &ColumnTypeResolver{conversions: conversions, tuples: tuples, udts: udts}
}

// ResolveProperty resolves a property's column type. An explicit type
// annotation has the highest priority; otherwise the declared Go type is
// inferred.
func (r *ColumnTypeResolver) ResolveProperty(p entity.Property) (*coltype.CassandraColumnType, error) {
	if spec := p.TypeSpec(); spec != nil {
		return r.ResolveSpec(spec)
	}

	return r.ResolveType(p.Type())
}

// ResolveType resolves a declared Go type recursively. Pointers are
// transparent.
func (r *ColumnTypeResolver) ResolveType(t reflect.Type) (*coltype.CassandraColumnType, error) {
	if t == nil {
		return unknownType(), nil
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	// simple types win: directly or via a registered conversion
	if target, ok := r.conversions.WriteTarget(t); ok {
		return coltype.Scalar(t, nativeForSimple[target]), nil
	}

	if name, ok := r.udts[t]; ok {
		return r.resolveUDTStruct(t, name)
	}

	if _, ok := r.tuples[t]; ok {
		return r.resolveTupleStruct(t)
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem, err := r.ResolveType(t.Elem())
		if err != nil {
			return nil, err
		}

		return coltype.ListOf(t, elem), nil

	case reflect.Map:
		key, err := r.ResolveType(t.Key())
		if err != nil {
			return nil, err
		}

		// map[T]struct{} is the Go spelling of a set
		if t.Elem() == emptyStruct {
			return coltype.SetOf(t, key), nil
		}

		value, err := r.ResolveType(t.Elem())
		if err != nil {
			return nil, err
		}

		return coltype.MapOf(t, key, value), nil
	}

	return nil, fmt.Errorf("%w for type %s", ErrUnresolvable, t)
}

// ResolveSpec builds the column type straight from an explicit type
// annotation, bypassing generic-type inference.
func (r *ColumnTypeResolver) ResolveSpec(spec *entity.TypeSpec) (*coltype.CassandraColumnType, error) {
	switch spec.Kind {
	case cqltype.KindList, cqltype.KindSet:
		elem, err := specArgument(spec, 0, 1)
		if err != nil {
			return nil, err
		}

		if spec.Kind == cqltype.KindList {
			return coltype.ListOf(reflect.SliceOf(elem.Type()), elem), nil
		}

		return coltype.SetOf(reflect.MapOf(elem.Type(), emptyStruct), elem), nil

	case cqltype.KindMap:
		key, err := specArgument(spec, 0, 2)
		if err != nil {
			return nil, err
		}

		value, err := specArgument(spec, 1, 2)
		if err != nil {
			return nil, err
		}

		return coltype.MapOf(reflect.MapOf(key.Type(), value.Type()), key, value), nil

	case cqltype.KindUDT:
		if spec.UserTypeName == "" {
			return nil, fmt.Errorf("%w: udt annotation without a user type name", ErrUnresolvable)
		}

		return coltype.UDTOf(reflect.TypeFor[map[string]any](), spec.UserTypeName), nil

	case cqltype.KindTuple:
		return nil, fmt.Errorf("%w: tuple types cannot be declared by annotation", ErrUnresolvable)

	case cqltype.KindVector:
		return nil, fmt.Errorf("%w: vector types cannot be declared by annotation, use a vector-backed Go type", ErrUnresolvable)

	default:
		native := cqltype.Scalar(spec.Kind)
		if native == nil {
			return nil, fmt.Errorf("%w: annotation names unknown kind %s", ErrUnresolvable, spec.Kind)
		}

		return coltype.Scalar(native.GoType(), native), nil
	}
}

func specArgument(spec *entity.TypeSpec, i, want int) (*coltype.CassandraColumnType, error) {
	if len(spec.Arguments) != want {
		return nil, fmt.Errorf("%w: %s annotation requires %d type arguments, got %d",
			ErrUnresolvable, spec.Kind.CQLName(), want, len(spec.Arguments))
	}

	native := cqltype.Scalar(spec.Arguments[i])
	if native == nil {
		return nil, fmt.Errorf("%w: annotation argument %s is not a scalar kind",
			ErrUnresolvable, spec.Arguments[i])
	}

	return coltype.Scalar(native.GoType(), native), nil
}

// ResolveValue resolves from a runtime value's concrete shape. Empty
// collections keep an unknown element type; nil resolves to the
// unknown/object default.
func (r *ColumnTypeResolver) ResolveValue(v any) (*coltype.CassandraColumnType, error) {
	if v == nil {
		return unknownType(), nil
	}

	t := reflect.TypeOf(v)
	if r.conversions.IsSimpleType(t) {
		return r.ResolveType(t)
	}

	if _, ok := r.udts[t]; ok {
		return r.ResolveType(t)
	}

	if _, ok := r.tuples[t]; ok {
		return r.ResolveType(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return coltype.ListOf(t, unknownType()), nil
		}

		elem, err := r.ResolveValue(rv.Index(0).Interface())
		if err != nil {
			return nil, err
		}

		return coltype.ListOf(t, elem), nil

	case reflect.Map:
		iter := rv.MapRange()
		if !iter.Next() {
			if t.Elem() == emptyStruct {
				return coltype.SetOf(t, unknownType()), nil
			}

			return coltype.MapOf(t, unknownType(), unknownType()), nil
		}

		key, err := r.ResolveValue(iter.Key().Interface())
		if err != nil {
			return nil, err
		}

		if t.Elem() == emptyStruct {
			return coltype.SetOf(t, key), nil
		}

		value, err := r.ResolveValue(iter.Value().Interface())
		if err != nil {
			return nil, err
		}

		return coltype.MapOf(t, key, value), nil
	}

	return r.ResolveType(t)
}

func (r *ColumnTypeResolver) resolveUDTStruct(t reflect.Type, name string) (*coltype.CassandraColumnType, error) {
	fields, err := r.resolveFields(t)
	if err != nil {
		return nil, err
	}

	return coltype.UDTOf(t, name, fields...), nil
}

func (r *ColumnTypeResolver) resolveTupleStruct(t reflect.Type) (*coltype.CassandraColumnType, error) {
	fields, err := r.resolveFields(t)
	if err != nil {
		return nil, err
	}

	elems := make([]*coltype.CassandraColumnType, len(fields))
	for i, f := range fields {
		elems[i] = f.Type
	}

	return coltype.TupleOf(t, elems...), nil
}

func (r *ColumnTypeResolver) resolveFields(t reflect.Type) ([]coltype.UDTField, error) {
	var fields []coltype.UDTField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		ft, err := r.ResolveType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t, f.Name, err)
		}

		fields = append(fields, coltype.UDTField{
			Name: cqltype.NewIdentifier(f.Name).Name(),
			Type: ft,
		})
	}

	return fields, nil
}

// unknownType is the default for null values and untyped holes: an
// opaque object stored as a blob.
func unknownType() *coltype.CassandraColumnType {
	return coltype.Scalar(reflect.TypeFor[any](), cqltype.Blob)
}
