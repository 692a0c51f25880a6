// Package csp: Constraint, Backtrack and NeighborsDiffer.

package csp

import (
	"errors"
	"fmt"
)

// Sentinel errors for Backtrack.
var (
	// ErrNoAssignment indicates that no complete assignment satisfies the constraint.
	ErrNoAssignment = errors.New("csp: no consistent assignment")

	// ErrMissingDomain indicates a variable without a domain entry.
	ErrMissingDomain = errors.New("csp: variable has no domain")
)

// Constraint decides whether value may be given to v on top of the partial
// assignment. It must not modify assigned.
type Constraint[V comparable, D any] interface {
	Allowed(assigned map[V]D, v V, value D) bool
}

// ConstraintFunc adapts a function to Constraint.
type ConstraintFunc[V comparable, D any] func(assigned map[V]D, v V, value D) bool

// Allowed calls f.
func (f ConstraintFunc[V, D]) Allowed(assigned map[V]D, v V, value D) bool {
	return f(assigned, v, value)
}

// Backtrack assigns variables in the given order, trying domain values in
// order and undoing the latest choice when a variable runs out of values.
// The first complete assignment is returned; if none exists the error wraps
// ErrNoAssignment. An empty variable list yields an empty assignment.
func Backtrack[V comparable, D any](vars []V, domains map[V][]D, c Constraint[V, D]) (map[V]D, error) {
	for _, v := range vars {
		if _, ok := domains[v]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingDomain, v)
		}
	}

	assigned := make(map[V]D, len(vars))
	if !assign(vars, 0, domains, c, assigned) {
		return nil, fmt.Errorf("%w: %d variables", ErrNoAssignment, len(vars))
	}

	return assigned, nil
}

func assign[V comparable, D any](vars []V, i int, domains map[V][]D, c Constraint[V, D], assigned map[V]D) bool {
	if i == len(vars) {
		return true
	}
	v := vars[i]
	for _, value := range domains[v] {
		if !c.Allowed(assigned, v, value) {
			continue
		}
		assigned[v] = value
		if assign(vars, i+1, domains, c, assigned) {
			return true
		}
		delete(assigned, v)
	}

	return false
}

// NeighborsDiffer forbids giving a variable the same value as any assigned
// neighbour. Adjacency is symmetrized, so each pair need only be listed once.
func NeighborsDiffer[V comparable, D comparable](adjacency map[V][]V) ConstraintFunc[V, D] {
	nb := symmetrize(adjacency)

	return func(assigned map[V]D, v V, value D) bool {
		for _, n := range nb[v] {
			if got, ok := assigned[n]; ok && got == value {
				return false
			}
		}

		return true
	}
}

// Conflicts lists every adjacent pair holding the same value, each pair once
// in adjacency order.
func Conflicts[V comparable, D comparable](adjacency map[V][]V, assignment map[V]D, order []V) [][2]V {
	var out [][2]V
	seen := make(map[[2]V]struct{})
	for _, a := range order {
		for _, b := range adjacency[a] {
			if _, dup := seen[[2]V{b, a}]; dup {
				continue
			}
			seen[[2]V{a, b}] = struct{}{}
			va, okA := assignment[a]
			vb, okB := assignment[b]
			if okA && okB && va == vb {
				out = append(out, [2]V{a, b})
			}
		}
	}

	return out
}

func symmetrize[V comparable](adjacency map[V][]V) map[V][]V {
	out := make(map[V][]V, len(adjacency))
	has := make(map[[2]V]struct{})
	add := func(a, b V) {
		if _, ok := has[[2]V{a, b}]; ok {
			return
		}
		has[[2]V{a, b}] = struct{}{}
		out[a] = append(out[a], b)
	}
	for a, bs := range adjacency {
		for _, b := range bs {
			add(a, b)
			add(b, a)
		}
	}

	return out
}
