// Package bestfirst: options and sentinel errors.

package bestfirst

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilHeuristic indicates that an informed search received a nil Heuristic.
	// Use heuristic.Zero for h(n) = 0.
	ErrNilHeuristic = errors.New("bestfirst: heuristic is nil")

	// ErrNegativeHeuristic indicates that a heuristic returned an estimate below zero.
	ErrNegativeHeuristic = errors.New("bestfirst: negative heuristic estimate")

	// ErrExpansionLimit indicates that MaxExpansions states were expanded
	// without reaching the goal. The accompanying Result carries the count.
	ErrExpansionLimit = errors.New("bestfirst: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")
)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables shared by UniformCost, GreedyBestFirst and AStar.
type Options struct {
	// Ctx is checked once per dequeue; cancellation aborts the search with ctx.Err().
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expanded states.
	MaxExpansions int

	// MissingEdge selects the cost-replay behavior of GreedyBestFirst.
	MissingEdge core.MissingEdgePolicy

	// OnExpand, if non-nil, is called after each expansion with the running
	// expansion count and the priority the state was dequeued with.
	OnExpand func(expanded int, priority float64)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - RaiseOnMissing for greedy cost replay
//   - no OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		MissingEdge:   core.RaiseOnMissing,
	}
}

// WithContext sets a context for cooperative cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMissingEdgePolicy selects how greedy cost replay treats a path edge
// that the graph cannot price.
func WithMissingEdgePolicy(p core.MissingEdgePolicy) Option {
	return func(o *Options) { o.MissingEdge = p }
}

// WithOnExpand registers a hook invoked after every expansion.
func WithOnExpand(fn func(expanded int, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
