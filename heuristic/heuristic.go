// Package heuristic defines the single-method capability through which a
// search obtains h(n), the estimated remaining cost from a state to the goal.
//
// Each problem domain supplies its own implementation (straight-line distance
// for routes, Hamming/Manhattan/… for sliding tiles). The engine is agnostic to
// admissibility; it only requires non-negative estimates.
//
// There is no implicit default: a caller that wants h(n) = 0 passes Zero
// explicitly.
package heuristic

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when a heuristic is asked about a state outside
// its domain (for example a location missing from a coordinate table). Failing
// loudly keeps a typo from silently turning an informed search into a blind one.
var ErrUnknownState = errors.New("heuristic: state outside heuristic domain")

// Heuristic estimates the remaining cost from s to the goal it was built for.
type Heuristic[S comparable] interface {
	Estimate(s S) (float64, error)
}

// Func adapts a fallible function to Heuristic.
type Func[S comparable] func(s S) (float64, error)

// Estimate calls f(s).
func (f Func[S]) Estimate(s S) (float64, error) { return f(s) }

// Plain adapts an infallible function to Heuristic.
type Plain[S comparable] func(s S) float64

// Estimate calls f(s) and never fails.
func (f Plain[S]) Estimate(s S) (float64, error) { return f(s), nil }

// Zero is the explicit null heuristic h(n) = 0. A* with Zero expands states in
// exactly the same order as uniform-cost search.
type Zero[S comparable] struct{}

// Estimate returns 0.
func (Zero[S]) Estimate(S) (float64, error) { return 0, nil }

// Table is a precomputed lookup heuristic. States missing from the table fail
// with ErrUnknownState instead of defaulting to 0.
type Table[S comparable] map[S]float64

// Estimate returns the tabulated value for s.
func (t Table[S]) Estimate(s S) (float64, error) {
	v, ok := t[s]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownState, s)
	}

	return v, nil
}
