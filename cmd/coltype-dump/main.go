// Package main provides the coltype-dump CLI.
//
// coltype-dump parses a CQL type string and dumps the resulting native
// type descriptor, useful when debugging schema/type mismatches:
//
//	coltype-dump 'map<text, frozen<list<int>>>'
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"cassmap/cqltype"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: coltype-dump <cql-type-string>")
		os.Exit(2)
	}

	t, err := cqltype.ParseType(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(t)
	spew.Dump(t)
}
