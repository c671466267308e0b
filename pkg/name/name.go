// Package name provides the interned name table shared by the lexer and the
// syntax tree.
//
// Every distinct spelling seen during a compilation (identifiers, keywords,
// operator spellings) is stored once in a Table. A Name is a small comparable
// handle into that table: two Names are == exactly when they denote the same
// interned slot of the same table.
package name

import (
	"bytes"
	"fmt"
)

// Name is an interned, immutable text value.
//
// The zero Name is "no name" and belongs to no table.
type Name struct {
	table *Table
	index int32
	gen   uint32
}

// IsNil reports whether n is the zero Name.
func (n Name) IsNil() bool {
	return n.table == nil
}

// Table returns the table that owns n, or nil for the zero Name.
func (n Name) Table() *Table {
	return n.table
}

// Index returns the slot ordinal of n within its table.
// Slots are numbered densely from 0 in insertion order.
func (n Name) Index() int {
	return int(n.index)
}

// Bytes returns the UTF-8 bytes of n. The returned slice aliases the table's
// arena and must not be modified.
func (n Name) Bytes() []byte {
	if n.table == nil {
		return nil
	}
	e := n.entry()
	end := e.offset + e.length
	return n.table.arena[e.offset:end:end]
}

// Len returns the byte length of n.
func (n Name) Len() int {
	if n.table == nil {
		return 0
	}
	return n.entry().length
}

// IsEmpty reports whether n is the empty spelling.
func (n Name) IsEmpty() bool {
	return n.Len() == 0
}

// String returns the text of n.
func (n Name) String() string {
	if n.table == nil {
		return ""
	}
	return string(n.Bytes())
}

// ContentEquals reports whether n spells s.
func (n Name) ContentEquals(s string) bool {
	return string(n.Bytes()) == s
}

// HasPrefix reports whether n starts with the bytes of prefix.
func (n Name) HasPrefix(prefix Name) bool {
	return bytes.HasPrefix(n.Bytes(), prefix.Bytes())
}

// LastIndexByte returns the byte offset of the last c in n, or -1.
func (n Name) LastIndexByte(c byte) int {
	return bytes.LastIndexByte(n.Bytes(), c)
}

// Append appends the bytes of n to b.
func (n Name) Append(b []byte) []byte {
	return append(b, n.Bytes()...)
}

// GoString implements fmt.GoStringer.
func (n Name) GoString() string {
	if n.table == nil {
		return "name.Name{}"
	}
	return fmt.Sprintf("name.Name{%q #%d}", n.String(), n.index)
}

func (n Name) entry() entry {
	t := n.table
	if n.gen != t.gen {
		panic(fmt.Sprintf("name: name #%d used after its table was reset", n.index))
	}
	return t.entries[n.index]
}
