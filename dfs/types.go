// Package dfs: options, colours and error definitions for depth-first search.

package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Visitation colours used by FindCycle.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is on the current recursion stack.
	Black        // Black: the state and all its descendants have been fully explored.
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions paths were expanded
	// without reaching the goal.
	ErrExpansionLimit = errors.New("dfs: expansion limit reached")

	// ErrCycleDetected indicates that FindCycle met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS.
type Option func(*Options)

// Options holds configurable parameters for DFS.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per popped path.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many
	// expansions without reaching the goal. Since DFS may enumerate
	// exponentially many paths, callers on larger graphs should set it.
	MaxExpansions int

	// MaxDepth, if > 0, never extends a path beyond MaxDepth edges.
	MaxDepth int

	// OnExpand, if non-nil, is invoked for every popped path with the running
	// expansion count and the path depth in edges.
	OnExpand func(expanded, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no limits and
// no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of popped paths. Negative values are
// recorded as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth limits path length in edges; 0 disables the limit, negative
// values are recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnExpand registers a per-expansion hook.
func WithOnExpand(fn func(expanded, depth int)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
