// Package minimax: Player, the Game capability and Evaluate.

package minimax

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoUtility indicates a terminal node with no utility value.
var ErrNoUtility = errors.New("minimax: terminal node has no utility")

// Player is the side to move at a node.
type Player int

const (
	// Max picks the child with the highest value.
	Max Player = iota
	// Min picks the child with the lowest value.
	Min
)

// String returns "MAX" or "MIN".
func (p Player) String() string {
	if p == Max {
		return "MAX"
	}

	return "MIN"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Max {
		return Min
	}

	return Max
}

// Game is the capability Evaluate walks. Successors must be finite and the
// game tree acyclic, otherwise evaluation never terminates.
type Game[N comparable] interface {
	Successors(n N) []N
	Terminal(n N) bool
	Utility(n N) (float64, error)
}

// Evaluate returns the minimax value of node with p to move, alternating
// players at every ply. When labels is non-nil every visited node is recorded
// with its value.
//
// A non-terminal node without successors evaluates to -Inf for Max and +Inf
// for Min. The first Utility error aborts the walk.
func Evaluate[N comparable](g Game[N], node N, p Player, labels map[N]float64) (float64, error) {
	if g.Terminal(node) {
		v, err := g.Utility(node)
		if err != nil {
			return 0, err
		}
		if labels != nil {
			labels[node] = v
		}

		return v, nil
	}

	v := math.Inf(-1)
	better := func(a, b float64) bool { return a > b }
	if p == Min {
		v = math.Inf(1)
		better = func(a, b float64) bool { return a < b }
	}
	for _, child := range g.Successors(node) {
		cv, err := Evaluate(g, child, p.Opponent(), labels)
		if err != nil {
			return 0, fmt.Errorf("%v: %w", node, err)
		}
		if better(cv, v) {
			v = cv
		}
	}
	if labels != nil {
		labels[node] = v
	}

	return v, nil
}
