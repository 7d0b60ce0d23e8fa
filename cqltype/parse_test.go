package cqltype_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cassmap/cqltype"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"int", "int"},
		{"TEXT", "text"},
		{"list<int>", "list<int>"},
		{"set< text >", "set<text>"},
		{"map<text, double>", "map<text, double>"},
		{"map<text, frozen<list<int>>>", "map<text, list<int>>"},
		{"frozen<set<uuid>>", "set<uuid>"},
		{"tuple<int, text, boolean>", "tuple<int, text, boolean>"},
		{"vector<float, 3>", "vector<float, 3>"},
		{"vector<float>", "vector<float>"},
		{"address", "address"},
		{"frozen<address>", "address"},
		{"list<frozen<address>>", "list<address>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			typ, err := cqltype.ParseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"list<>",
		"list<int",
		"map<text>",
		"map<text, int, int>",
		"int>",
		"vector<float, x>",
		"list<int> extra",
	}

	for _, input := range invalid {
		t.Run(fmt.Sprintf("invalid %q", input), func(t *testing.T) {
			t.Parallel()

			_, err := cqltype.ParseType(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, cqltype.ErrBadTypeString)
		})
	}
}

func TestParseTypeQuotedUDT(t *testing.T) {
	t.Parallel()

	typ, err := cqltype.ParseType(`"Address"`)
	require.NoError(t, err)
	assert.Equal(t, cqltype.KindUDT, typ.Kind())
	assert.Equal(t, "Address", typ.UDTName())
}
