// Package dfs: directed cycle detection with three-colour marking.
//
// Complexity:
//
//   - Time:   O(V + E) over the states reachable from the roots
//   - Memory: O(V)     (colour map + recursion stack)

package dfs

import "github.com/katalvlaran/lvsearch/core"

// FindCycle explores every state reachable from roots and returns the first
// directed cycle it meets as [v, …, v] (first and last state equal).
// Successor order is the graph's, so the reported cycle is deterministic.
// A nil graph is treated as cycle-free.
//
// An undirected core.Table mirrors every edge, so every edge of it is a
// 2-cycle; FindCycle is meant for directed graphs.
func FindCycle[S comparable](g core.Graph[S], roots ...S) ([]S, bool) {
	if g == nil {
		return nil, false
	}

	c := &cycleFinder[S]{graph: g, color: make(map[S]int)}
	for _, r := range roots {
		if c.color[r] != White {
			continue
		}
		if c.visit(r) {
			return c.cycle, true
		}
	}

	return nil, false
}

type cycleFinder[S comparable] struct {
	graph core.Graph[S]
	color map[S]int // absent ⇒ White
	stack []S       // current recursion path
	cycle []S
}

// visit colours s Gray, recurses into its successors and reports whether a
// back edge (Gray→Gray) was found below s.
func (c *cycleFinder[S]) visit(s S) bool {
	c.color[s] = Gray
	c.stack = append(c.stack, s)

	for _, e := range c.graph.Successors(s) {
		switch c.color[e.To] {
		case Gray:
			c.cycle = c.extract(e.To)
			return true
		case White:
			if c.visit(e.To) {
				return true
			}
		}
	}

	c.stack = c.stack[:len(c.stack)-1]
	c.color[s] = Black

	return false
}

// extract copies the stack suffix starting at the Gray state v and closes it.
func (c *cycleFinder[S]) extract(v S) []S {
	i := len(c.stack) - 1
	for i >= 0 && c.stack[i] != v {
		i--
	}
	out := make([]S, 0, len(c.stack)-i+1)
	out = append(out, c.stack[i:]...)

	return append(out, v)
}
