// Package core: Table, the materialized realization of Graph.
//
// A Table keeps the full successor mapping in memory. Adjacency is stored as
// an insertion-ordered slice per state plus an index map for O(1) cost lookup,
// so Successors is deterministic and Cost is constant time.
// A sync.RWMutex guards both, so a Table may be shared by concurrent searches
// once it has been built.

package core

import (
	"fmt"
	"sync"
)

// TableOption configures a Table before any edge is added.
type TableOption func(t *tableConfig)

type tableConfig struct {
	directed bool
}

// WithDirected sets whether AddEdge records only from→to (true) or mirrors
// the edge as to→from as well (false, the default).
func WithDirected(directed bool) TableOption {
	return func(c *tableConfig) { c.directed = directed }
}

// Table is a materialized, thread-safe state graph with non-negative costs.
type Table[S comparable] struct {
	mu       sync.RWMutex
	directed bool

	order []S             // states in first-seen order
	adj   map[S][]Edge[S] // state → successors in insertion order
	index map[S]map[S]int // state → successor → position in adj[state]
}

// NewTable creates an empty Table. By default edges are undirected.
// Complexity: O(1).
func NewTable[S comparable](opts ...TableOption) *Table[S] {
	cfg := tableConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Table[S]{
		directed: cfg.directed,
		adj:      make(map[S][]Edge[S]),
		index:    make(map[S]map[S]int),
	}
}

// Directed reports whether the Table records one-way edges.
func (t *Table[S]) Directed() bool { return t.directed }

// AddState registers s without edges. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (t *Table[S]) AddState(s S) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure(s)
}

// AddEdge records a transition from→to with the given cost, and to→from as
// well when the Table is undirected. Adding an existing edge overwrites its
// cost but keeps its original position in the successor order.
// Returns ErrNegativeCost if cost < 0.
// Complexity: O(1) amortized.
func (t *Table[S]) AddEdge(from, to S, cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, from, to, cost)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.put(from, to, cost)
	if !t.directed && from != to {
		t.put(to, from, cost)
	}

	return nil
}

// Successors returns a copy of the successors of s in insertion order.
// An unknown state yields nil.
// Complexity: O(deg(s)).
func (t *Table[S]) Successors(s S) []Edge[S] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	edges := t.adj[s]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Edge[S], len(edges))
	copy(out, edges)

	return out
}

// Cost returns the cost of the edge from→to and whether it exists.
// Complexity: O(1).
func (t *Table[S]) Cost(from, to S) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	pos, ok := t.index[from][to]
	if !ok {
		return 0, false
	}

	return t.adj[from][pos].Cost, true
}

// Has reports whether s was registered, either explicitly or as an edge endpoint.
func (t *Table[S]) Has(s S) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.adj[s]

	return ok
}

// States returns every registered state in first-seen order.
func (t *Table[S]) States() []S {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]S, len(t.order))
	copy(out, t.order)

	return out
}

// Len returns the number of registered states.
func (t *Table[S]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.order)
}

// ensure registers s if absent. Caller holds the write lock.
func (t *Table[S]) ensure(s S) {
	if _, ok := t.adj[s]; ok {
		return
	}
	t.order = append(t.order, s)
	t.adj[s] = []Edge[S]{}
	t.index[s] = make(map[S]int)
}

// put inserts or overwrites the single directed edge from→to. Caller holds the write lock.
func (t *Table[S]) put(from, to S, cost float64) {
	t.ensure(from)
	t.ensure(to)
	if pos, ok := t.index[from][to]; ok {
		t.adj[from][pos].Cost = cost
		return
	}
	t.index[from][to] = len(t.adj[from])
	t.adj[from] = append(t.adj[from], Edge[S]{To: to, Cost: cost})
}
