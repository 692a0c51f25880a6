package core

// LazyGraph adapts a successor function into a Graph. Successors are computed
// on every query and never enumerated in full, which is what implicit state
// spaces such as sliding-tile boards need.
//
// The function must be side-effect free so that independent searches may share
// the same LazyGraph from different goroutines.
type LazyGraph[S comparable] func(s S) []Edge[S]

// Successors calls the underlying function.
func (f LazyGraph[S]) Successors(s S) []Edge[S] { return f(s) }

// Has always reports true: any state reachable through Successors is valid
// by construction.
func (f LazyGraph[S]) Has(S) bool { return true }
