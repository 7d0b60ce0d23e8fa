package cqltype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadTypeString is wrapped by every ParseType failure.
var ErrBadTypeString = errors.New("cqltype: malformed type string")

// ParseType parses a CQL type string such as "map<text, frozen<list<int>>>",
// "tuple<int, text>" or "vector<float, 3>". frozen<...> wrappers are
// transparent. A bare name that is not a known scalar is taken as a
// reference to a user-defined type with unknown fields.
func ParseType(s string) (*NativeType, error) {
	p := &typeParser{input: s, rest: s}

	t, err := p.parse()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if p.rest != "" {
		return nil, p.errorf("trailing input %q", p.rest)
	}

	return t, nil
}

type typeParser struct {
	input string
	rest  string
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrBadTypeString, p.input, fmt.Sprintf(format, args...))
}

func (p *typeParser) parse() (*NativeType, error) {
	name := p.readName()
	if name == "" {
		return nil, p.errorf("expected a type name at %q", p.rest)
	}

	switch strings.ToLower(name) {
	case "frozen":
		inner, err := p.args(1)
		if err != nil {
			return nil, err
		}

		return inner[0], nil

	case "list", "set":
		inner, err := p.args(1)
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(name, "list") {
			return ListOf(inner[0]), nil
		}

		return SetOf(inner[0]), nil

	case "map":
		inner, err := p.args(2)
		if err != nil {
			return nil, err
		}

		return MapOf(inner[0], inner[1]), nil

	case "tuple":
		inner, err := p.args(-1)
		if err != nil {
			return nil, err
		}

		return TupleOf(inner...), nil

	case "vector":
		return p.parseVector()

	default:
		for kind, cql := range cqlNames {
			if kind.IsScalar() && cql == strings.ToLower(name) {
				return Scalar(kind), nil
			}
		}

		// unknown bare name: a UDT reference
		return UDTOf(NewIdentifier(name).Name()), nil
	}
}

// args parses "<t1, t2, ...>"; n < 0 accepts any positive count.
func (p *typeParser) args(n int) ([]*NativeType, error) {
	if !p.consume("<") {
		return nil, p.errorf("expected '<' at %q", p.rest)
	}

	var out []*NativeType
	for {
		t, err := p.parse()
		if err != nil {
			return nil, err
		}

		out = append(out, t)
		if p.consume(",") {
			continue
		}

		break
	}

	if !p.consume(">") {
		return nil, p.errorf("expected '>' at %q", p.rest)
	}

	if n >= 0 && len(out) != n {
		return nil, p.errorf("expected %d type arguments, got %d", n, len(out))
	}

	return out, nil
}

func (p *typeParser) parseVector() (*NativeType, error) {
	if !p.consume("<") {
		return nil, p.errorf("expected '<' at %q", p.rest)
	}

	elem, err := p.parse()
	if err != nil {
		return nil, err
	}

	dims := 0
	if p.consume(",") {
		p.skipSpaces()

		digits := 0
		for digits < len(p.rest) && p.rest[digits] >= '0' && p.rest[digits] <= '9' {
			digits++
		}

		if digits == 0 {
			return nil, p.errorf("expected a dimension at %q", p.rest)
		}

		dims, err = strconv.Atoi(p.rest[:digits])
		if err != nil {
			return nil, p.errorf("bad dimension: %v", err)
		}

		p.rest = p.rest[digits:]
	}

	if !p.consume(">") {
		return nil, p.errorf("expected '>' at %q", p.rest)
	}

	return VectorOf(elem, dims), nil
}

func (p *typeParser) skipSpaces() {
	p.rest = strings.TrimLeft(p.rest, " \t")
}

func (p *typeParser) consume(tok string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.rest, tok) {
		p.rest = p.rest[len(tok):]
		return true
	}

	return false
}

func (p *typeParser) readName() string {
	p.skipSpaces()

	if strings.HasPrefix(p.rest, `"`) {
		end := strings.Index(p.rest[1:], `"`)
		if end < 0 {
			return ""
		}

		name := p.rest[:end+2]
		p.rest = p.rest[end+2:]

		return name
	}

	i := 0
	for i < len(p.rest) {
		c := p.rest[i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			i++
			continue
		}

		break
	}

	name := p.rest[:i]
	p.rest = p.rest[i:]

	return name
}
