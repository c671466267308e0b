package name

import "sync"

// DefaultPoolCapacity is the number of idle tables DefaultPool keeps.
const DefaultPoolCapacity = 4

// DefaultPool is the process-wide table pool.
var DefaultPool = NewPool(DefaultPoolCapacity, DefaultHashSize, DefaultArenaSize)

// Pool keeps a bounded number of reset tables so that large arenas can be
// reused across compilations.
//
// Get hands out the most recently returned table. When a Put would exceed
// the capacity, the oldest idle table is dropped. Pool is safe for
// concurrent use; the tables it hands out are not.
type Pool struct {
	mu        sync.Mutex
	idle      []*Table
	capacity  int
	hashSize  int
	arenaSize int

	hits   int
	misses int
}

// NewPool returns a pool that keeps at most capacity idle tables and creates
// fresh tables with the given sizes.
func NewPool(capacity, hashSize, arenaSize int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{
		capacity:  capacity,
		hashSize:  hashSize,
		arenaSize: arenaSize,
	}
}

// Get returns an empty table owned by p.
func (p *Pool) Get() *Table {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.idle); n > 0 {
		t := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		t.pooled = false
		p.hits++
		return t
	}
	p.misses++
	t := NewTable(p.hashSize, p.arenaSize)
	t.pool = p
	return t
}

// Put resets t and keeps it for reuse. Putting a table twice is a no-op.
func (p *Pool) Put(t *Table) {
	if t == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if t.pooled {
		return
	}
	t.Reset()
	t.pool = p
	t.pooled = true
	if p.capacity == 0 {
		return
	}
	if len(p.idle) == p.capacity {
		copy(p.idle, p.idle[1:])
		p.idle[len(p.idle)-1] = nil
		p.idle = p.idle[:len(p.idle)-1]
	}
	p.idle = append(p.idle, t)
}

// Idle returns the number of tables waiting for reuse.
func (p *Pool) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}

// Capacity returns the maximum number of idle tables.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Counters returns how many Gets were served from the pool and how many
// required a fresh table.
func (p *Pool) Counters() (hits, misses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.misses
}
