// Package bfs: the FIFO walker.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// entry is one frontier element: a full path from start and its cost.
type entry[S comparable] struct {
	path []S
	cost float64
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	graph    core.Graph[S]
	goal     S
	opts     Options
	queue    []entry[S]
	visited  map[S]struct{}
	expanded int
}

// BFS runs breadth-first search on g from start to goal.
//
// The frontier is FIFO and each entry carries its full path, so no predecessor
// map is needed. A state is marked visited when it is enqueued, never enqueued
// twice, and the goal is tested when dequeued. The returned path therefore has
// the fewest edges of any start→goal path; Result.Cost is the sum of its edge
// costs, which need not be minimal.
//
// Returns core.ErrNilGraph, ErrOptionViolation, core.ErrNegativeCost,
// ErrExpansionLimit or the context error. An unreachable goal is
// core.Unreachable, not an error.
func BFS[S comparable](g core.Graph[S], start, goal S, opts ...Option) (core.Result[S], error) {
	if g == nil {
		return core.Unreachable[S](0), core.ErrNilGraph
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.Unreachable[S](0), o.err
	}

	w := &walker[S]{
		graph:   g,
		goal:    goal,
		opts:    o,
		queue:   []entry[S]{{path: []S{start}}},
		visited: map[S]struct{}{start: {}},
	}

	return w.loop()
}

// loop processes the queue until the goal is dequeued, the queue empties,
// the context is cancelled or the expansion limit is hit.
func (w *walker[S]) loop() (core.Result[S], error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return core.Unreachable[S](w.expanded), w.opts.Ctx.Err()
		default:
		}

		cur := w.dequeue()
		last := cur.path[len(cur.path)-1]
		if last == w.goal {
			return core.Result[S]{Path: cur.path, Cost: cur.cost, Expanded: w.expanded}, nil
		}
		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			return core.Unreachable[S](w.expanded), fmt.Errorf("%w: %d states", ErrExpansionLimit, w.expanded)
		}
		if err := w.enqueueSuccessors(cur, last); err != nil {
			return core.Unreachable[S](w.expanded), err
		}
	}

	return core.Unreachable[S](w.expanded), nil
}

// dequeue pops the first entry and counts it as expanded.
func (w *walker[S]) dequeue() entry[S] {
	cur := w.queue[0]
	w.queue[0] = entry[S]{}
	w.queue = w.queue[1:]
	w.expanded++
	if w.opts.OnExpand != nil {
		w.opts.OnExpand(w.expanded, len(cur.path)-1)
	}

	return cur
}

// enqueueSuccessors appends every unseen successor of last as an extended path.
func (w *walker[S]) enqueueSuccessors(cur entry[S], last S) error {
	if w.opts.MaxDepth > 0 && len(cur.path)-1 >= w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.graph.Successors(last) {
		if _, seen := w.visited[e.To]; seen {
			continue
		}
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%g", core.ErrNegativeCost, last, e.To, e.Cost)
		}
		w.visited[e.To] = struct{}{}
		w.queue = append(w.queue, entry[S]{path: extend(cur.path, e.To), cost: cur.cost + e.Cost})
	}

	return nil
}

// extend returns a fresh copy of path with s appended; sibling paths never
// share a backing array.
func extend[S comparable](path []S, s S) []S {
	out := make([]S, len(path)+1)
	copy(out, path)
	out[len(path)] = s

	return out
}
