package token

import (
	"fmt"

	"github.com/leapstack-labs/leapjc/pkg/name"
)

// Registry maps interned spellings back to their fixed kinds. It is built
// once per name table; keyword recognition is a single slice read after the
// identifier has been interned.
type Registry struct {
	table     *name.Table
	spellings [numKinds]name.Name
	// key[i] is the kind whose spelling has name index i, plus one.
	// Zero means the slot does not belong to a fixed spelling.
	key []uint8
}

// NewRegistry interns every fixed spelling of the catalog into t.
func NewRegistry(t *name.Table) *Registry {
	r := &Registry{table: t}
	maxIndex := -1
	for k := Kind(0); k < numKinds; k++ {
		s := k.Spelling()
		if s == "" {
			continue
		}
		n := t.FromString(s)
		r.spellings[k] = n
		if n.Index() > maxIndex {
			maxIndex = n.Index()
		}
	}
	r.key = make([]uint8, maxIndex+1)
	for k := Kind(0); k < numKinds; k++ {
		if n := r.spellings[k]; !n.IsNil() {
			r.key[n.Index()] = uint8(k) + 1
		}
	}
	return r
}

// Table returns the name table the registry was built on.
func (r *Registry) Table() *name.Table {
	return r.table
}

// LookupKind returns the fixed kind spelled by n, or IDENTIFIER when n is
// not a fixed spelling of this registry's table.
func (r *Registry) LookupKind(n name.Name) Kind {
	k, _ := r.lookup(n)
	return k
}

// LookupSpelling resolves s without interning it. ok is false when s is
// not the spelling of any fixed kind.
func (r *Registry) LookupSpelling(s string) (k Kind, ok bool) {
	n, found := r.table.LookupString(s)
	if !found {
		return IDENTIFIER, false
	}
	return r.lookup(n)
}

// SpellingName returns the interned spelling of k, or the nil Name for
// payload kinds.
func (r *Registry) SpellingName(k Kind) name.Name {
	if k >= numKinds {
		return name.Name{}
	}
	return r.spellings[k]
}

// Kinds returns the kinds that have a fixed spelling.
func (r *Registry) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < numKinds; k++ {
		if !r.spellings[k].IsNil() {
			out = append(out, k)
		}
	}
	return out
}

func (r *Registry) lookup(n name.Name) (Kind, bool) {
	i := n.Index()
	if n.IsNil() || i < 0 || i >= len(r.key) || r.key[i] == 0 {
		return IDENTIFIER, false
	}
	k := Kind(r.key[i] - 1)
	// Guards against names from another table or a reset one.
	if r.spellings[k] != n {
		return IDENTIFIER, false
	}
	return k, true
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry{%d spellings}", len(r.Kinds()))
}
