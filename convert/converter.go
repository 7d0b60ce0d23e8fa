package convert

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"cassmap/internal/common"
)

var (
	ErrNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterNotAFunction = errors.New("provided converter is not a function")
	ErrDoublePointer         = errors.New("converter functions do not support double pointers")
)

// Converter is one direction of a custom domain/database conversion. The
// Convert callable must be pure: the registry is shared across goroutines
// without coordination.
type Converter struct {
	Source, Target reflect.Type
	Name           string
	Convert        func(v any) (any, error)
}

// Pair returns the identifying (source, target) pair.
func (c Converter) Pair() ConvertiblePair {
	return ConvertiblePair{Source: c.Source, Target: c.Target}
}

// ConvertiblePair identifies one direction of a registered converter.
type ConvertiblePair struct {
	Source, Target reflect.Type
}

func (p ConvertiblePair) String() string {
	return fmt.Sprintf("%s -> %s", p.Source, p.Target)
}

// ParseConverter inspects the provided function and wraps it as a
// Converter.
//
// Supported signatures:
//   - func(src S) (dst T)
//   - func(src S) (dst T, error)
func ParseConverter(fn any) (Converter, error) {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Converter{}, ErrConverterNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Converter{}, ErrNotAConverter
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Converter{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Converter{}, ErrDoublePointer
	}

	hasErr := false
	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Converter{}, ErrNotAConverter
		}

		hasErr = true
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	pkgPath, name := common.Unpack2(strings.SplitN(path.Base(fnPC.Name()), ".", 2))

	return Converter{
		Source: src,
		Target: dst,
		Name:   common.PkgAlias(pkgPath) + "." + name,
		Convert: func(v any) (any, error) {
			out := fnVal.Call([]reflect.Value{reflect.ValueOf(v)})
			if hasErr && !out[1].IsNil() {
				return nil, out[1].Interface().(error)
			}

			return out[0].Interface(), nil
		},
	}, nil
}

// MustConverter is ParseConverter for statically known functions.
func MustConverter(fn any) Converter {
	c, err := ParseConverter(fn)
	if err != nil {
		panic(err)
	}

	return c
}

func isError(t reflect.Type) bool {
	return t.Implements(reflect.TypeFor[error]())
}
