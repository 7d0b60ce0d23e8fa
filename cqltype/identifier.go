package cqltype

import "strings"

// Identifier is a CQL column/field identifier. Unquoted identifiers fold
// to lower case and compare case-insensitively; identifiers written with
// surrounding double quotes keep their exact spelling and compare exactly,
// matching server-side identifier semantics.
type Identifier struct {
	name   string
	quoted bool
}

// NewIdentifier builds an identifier from its written form, detecting
// surrounding double quotes.
func NewIdentifier(s string) Identifier {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return Identifier{name: s[1 : len(s)-1], quoted: true}
	}

	return Identifier{name: strings.ToLower(s)}
}

// QuotedIdentifier builds an exact-spelling identifier from a bare name.
func QuotedIdentifier(name string) Identifier {
	return Identifier{name: name, quoted: true}
}

// Name returns the identifier as stored: folded for unquoted identifiers,
// exact for quoted ones.
func (id Identifier) Name() string { return id.name }

// Quoted reports whether the identifier preserves case.
func (id Identifier) Quoted() bool { return id.quoted }

// Equal matches the identifier against another written form, applying the
// same quoting rules to both sides. Unquoted identifiers are folded at
// construction, so two unquoted identifiers match case-insensitively while
// a quoted identifier matches only its exact spelling.
func (id Identifier) Equal(written string) bool {
	return id.name == NewIdentifier(written).name
}

func (id Identifier) String() string {
	if id.quoted {
		return `"` + id.name + `"`
	}

	return id.name
}
