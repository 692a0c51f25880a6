// Package minimax: Tree, a table-driven Game over named nodes.

package minimax

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

// Tree is an explicit game tree: inner nodes list their children, leaves
// carry a utility. A node without children is terminal.
type Tree struct {
	children map[string][]string
	utility  map[string]float64
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{
		children: make(map[string][]string),
		utility:  make(map[string]float64),
	}
}

// AddChildren appends children to parent, preserving order.
func (t *Tree) AddChildren(parent string, children ...string) *Tree {
	t.children[parent] = append(t.children[parent], children...)

	return t
}

// SetUtility records the value of a leaf.
func (t *Tree) SetUtility(leaf string, v float64) *Tree {
	t.utility[leaf] = v

	return t
}

// Successors returns the children of n in insertion order.
func (t *Tree) Successors(n string) []string { return t.children[n] }

// Terminal reports whether n has no children.
func (t *Tree) Terminal(n string) bool { return len(t.children[n]) == 0 }

// Utility returns the value of leaf n, or ErrNoUtility.
func (t *Tree) Utility(n string) (float64, error) {
	v, ok := t.utility[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoUtility, n)
	}

	return v, nil
}

// Validate checks that no node is reachable from itself below root, so
// Evaluate terminates. A cycle is reported as dfs.ErrCycleDetected.
func (t *Tree) Validate(root string) error {
	g := core.LazyGraph[string](func(n string) []core.Edge[string] {
		kids := t.children[n]
		out := make([]core.Edge[string], len(kids))
		for i, k := range kids {
			out[i] = core.Edge[string]{To: k}
		}

		return out
	})
	if cycle, ok := dfs.FindCycle[string](g, root); ok {
		return fmt.Errorf("%w: %v", dfs.ErrCycleDetected, cycle)
	}

	return nil
}
