package name

import (
	"bytes"
	"unicode/utf8"
)

// Default sizes for a fresh table.
const (
	DefaultHashSize  = 0x8000
	DefaultArenaSize = 0x20000
)

// entry is one interned slot: a window into the arena plus the chain link to
// the next entry of the same bucket (index+1, 0 ends the chain).
type entry struct {
	offset int
	length int
	next   int32
}

// Table stores every interned spelling in a single growable byte arena and
// indexes it with a chained hash table.
//
// A Table is not safe for concurrent writers. Once populated it may be read
// from any number of goroutines.
type Table struct {
	arena   []byte
	used    int
	entries []entry
	buckets []int32 // entry index+1, 0 means empty
	mask    uint32
	gen     uint32

	pool   *Pool
	pooled bool
}

// New returns a table with the default hash and arena sizes.
func New() *Table {
	return NewTable(DefaultHashSize, DefaultArenaSize)
}

// NewTable returns a table with the given bucket count (rounded up to a power
// of two) and initial arena size in bytes.
func NewTable(hashSize, arenaSize int) *Table {
	if hashSize < 16 {
		hashSize = 16
	}
	size := 1
	for size < hashSize {
		size <<= 1
	}
	if arenaSize < 64 {
		arenaSize = 64
	}
	return &Table{
		arena:   make([]byte, arenaSize),
		buckets: make([]int32, size),
		mask:    uint32(size - 1),
		gen:     1,
	}
}

// hashValue is the rolling multiplicative hash h*31 + b, written as
// h<<5 - h + b.
func hashValue(b []byte) uint32 {
	var h int32
	for _, c := range b {
		h = h<<5 - h + int32(c)
	}
	return uint32(h)
}

// FromChars interns cs[start:start+n].
func (t *Table) FromChars(cs []rune, start, n int) Name {
	used := t.used
	t.ensureCapacity(used + n*utf8.UTFMax)
	tail := t.arena[:used]
	for _, r := range cs[start : start+n] {
		tail = utf8.AppendRune(tail, r)
	}
	nbytes := len(tail) - used
	key := t.arena[used : used+nbytes]
	h := hashValue(key) & t.mask
	if idx, ok := t.probe(h, key); ok {
		// The encoded tail is simply abandoned; used was never advanced.
		return t.nameAt(idx)
	}
	return t.link(h, used, nbytes)
}

// FromUtf interns the UTF-8 bytes b.
func (t *Table) FromUtf(b []byte) Name {
	return t.FromUtfRange(b, 0, len(b))
}

// FromUtfRange interns b[start:start+n].
func (t *Table) FromUtfRange(b []byte, start, n int) Name {
	key := b[start : start+n]
	h := hashValue(key) & t.mask
	if idx, ok := t.probe(h, key); ok {
		return t.nameAt(idx)
	}
	used := t.used
	t.ensureCapacity(used + n)
	copy(t.arena[used:], key)
	return t.link(h, used, n)
}

// FromString interns s.
func (t *Table) FromString(s string) Name {
	h := hashString(s) & t.mask
	for i := t.buckets[h]; i != 0; i = t.entries[i-1].next {
		e := t.entries[i-1]
		if e.length == len(s) && string(t.arena[e.offset:e.offset+e.length]) == s {
			return t.nameAt(int(i - 1))
		}
	}
	used := t.used
	t.ensureCapacity(used + len(s))
	copy(t.arena[used:], s)
	return t.link(h, used, len(s))
}

// Lookup returns the name spelled by b if it has already been interned.
// It never inserts.
func (t *Table) Lookup(b []byte) (Name, bool) {
	h := hashValue(b) & t.mask
	if idx, ok := t.probe(h, b); ok {
		return t.nameAt(idx), true
	}
	return Name{}, false
}

// LookupString is Lookup for a string key.
func (t *Table) LookupString(s string) (Name, bool) {
	h := hashString(s) & t.mask
	for i := t.buckets[h]; i != 0; i = t.entries[i-1].next {
		e := t.entries[i-1]
		if e.length == len(s) && string(t.arena[e.offset:e.offset+e.length]) == s {
			return t.nameAt(int(i - 1)), true
		}
	}
	return Name{}, false
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	return len(t.entries)
}

// Size returns the number of arena bytes in use.
func (t *Table) Size() int {
	return t.used
}

// Cap returns the current arena capacity in bytes.
func (t *Table) Cap() int {
	return len(t.arena)
}

// At returns the name in slot i.
func (t *Table) At(i int) Name {
	if i < 0 || i >= len(t.entries) {
		panic("name: slot index out of range")
	}
	return t.nameAt(i)
}

// Each calls fn for every interned name in insertion order until fn returns
// false.
func (t *Table) Each(fn func(Name) bool) {
	for i := range t.entries {
		if !fn(t.nameAt(i)) {
			return
		}
	}
}

// Stats describes the shape of a table.
type Stats struct {
	Names       int
	Bytes       int
	ArenaCap    int
	Buckets     int
	UsedBuckets int
	MaxChain    int
}

// Stats returns occupancy figures for t.
func (t *Table) Stats() Stats {
	s := Stats{
		Names:    len(t.entries),
		Bytes:    t.used,
		ArenaCap: len(t.arena),
		Buckets:  len(t.buckets),
	}
	for _, head := range t.buckets {
		if head == 0 {
			continue
		}
		s.UsedBuckets++
		chain := 0
		for i := head; i != 0; i = t.entries[i-1].next {
			chain++
		}
		if chain > s.MaxChain {
			s.MaxChain = chain
		}
	}
	return s
}

// Reset forgets every interned name while keeping the allocated storage.
// Names obtained before the reset must no longer be used.
func (t *Table) Reset() {
	t.used = 0
	t.entries = t.entries[:0]
	clear(t.buckets)
	t.gen++
}

// Dispose hands t back to the pool it was taken from. Tables that did not
// come from a pool are left alone.
func (t *Table) Dispose() {
	if t.pool != nil && !t.pooled {
		t.pool.Put(t)
	}
}

func (t *Table) probe(h uint32, key []byte) (int, bool) {
	for i := t.buckets[h]; i != 0; i = t.entries[i-1].next {
		e := t.entries[i-1]
		if e.length == len(key) && bytes.Equal(t.arena[e.offset:e.offset+e.length], key) {
			return int(i - 1), true
		}
	}
	return 0, false
}

func (t *Table) link(h uint32, offset, length int) Name {
	t.entries = append(t.entries, entry{offset: offset, length: length, next: t.buckets[h]})
	idx := len(t.entries) - 1
	t.buckets[h] = int32(idx + 1)
	t.used = offset + length
	if len(t.entries) > 2*len(t.buckets) {
		t.rehash()
	}
	return t.nameAt(idx)
}

func (t *Table) nameAt(i int) Name {
	return Name{table: t, index: int32(i), gen: t.gen}
}

func (t *Table) ensureCapacity(need int) {
	if need <= len(t.arena) {
		return
	}
	size := len(t.arena) * 2
	if size < need {
		size = need
	}
	grown := make([]byte, size)
	copy(grown, t.arena[:t.used])
	t.arena = grown
}

func (t *Table) rehash() {
	size := len(t.buckets) * 2
	t.buckets = make([]int32, size)
	t.mask = uint32(size - 1)
	for i := range t.entries {
		e := &t.entries[i]
		h := hashValue(t.arena[e.offset:e.offset+e.length]) & t.mask
		e.next = t.buckets[h]
		t.buckets[h] = int32(i + 1)
	}
}

func hashString(s string) uint32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h<<5 - h + int32(s[i])
	}
	return uint32(h)
}
