// Package river: state, rules and the materialized crossing graph.

package river

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrInvalidState indicates a state outside the totals or one that leaves
// villagers outnumbered on a bank.
var ErrInvalidState = errors.New("river: invalid state")

// Capacity is the number of people the boat carries.
const Capacity = 2

// State counts the people on the left bank and records where the boat is.
// The right bank holds the remainder.
type State struct {
	Villagers int
	Guards    int
	BoatLeft  bool
}

// String renders the state as (v,g,L) or (v,g,R).
func (s State) String() string {
	side := "R"
	if s.BoatLeft {
		side = "L"
	}

	return fmt.Sprintf("(%d,%d,%s)", s.Villagers, s.Guards, side)
}

// Action is one boat load: how many villagers and guards cross.
type Action struct {
	Villagers int
	Guards    int
}

// Actions lists the legal loads in the order successors are generated.
var Actions = []Action{
	{1, 0}, {2, 0},
	{0, 1}, {0, 2},
	{1, 1},
}

// Rules fixes the totals on both banks.
type Rules struct {
	Villagers int
	Guards    int
}

// DefaultRules is the classic three villagers and three guards.
func DefaultRules() Rules { return Rules{Villagers: 3, Guards: 3} }

// Initial returns everyone on the left bank with the boat.
func (r Rules) Initial() State {
	return State{Villagers: r.Villagers, Guards: r.Guards, BoatLeft: true}
}

// Goal returns everyone on the right bank.
func (r Rules) Goal() State { return State{} }

// Valid reports whether s is within the totals and no bank with villagers
// holds more guards than villagers.
func (r Rules) Valid(s State) bool {
	if s.Villagers < 0 || s.Villagers > r.Villagers || s.Guards < 0 || s.Guards > r.Guards {
		return false
	}
	if s.Villagers > 0 && s.Guards > s.Villagers {
		return false
	}
	rv, rg := r.Villagers-s.Villagers, r.Guards-s.Guards
	if rv > 0 && rg > rv {
		return false
	}

	return true
}

// Apply moves load a across with the boat. It fails with ErrInvalidState when
// the load is empty or over capacity, or when the resulting state is invalid.
func (r Rules) Apply(s State, a Action) (State, error) {
	n := a.Villagers + a.Guards
	if a.Villagers < 0 || a.Guards < 0 || n == 0 || n > Capacity {
		return s, fmt.Errorf("%w: load %d+%d", ErrInvalidState, a.Villagers, a.Guards)
	}

	next := State{BoatLeft: !s.BoatLeft}
	if s.BoatLeft {
		next.Villagers, next.Guards = s.Villagers-a.Villagers, s.Guards-a.Guards
	} else {
		next.Villagers, next.Guards = s.Villagers+a.Villagers, s.Guards+a.Guards
	}
	if !r.Valid(next) {
		return s, fmt.Errorf("%w: %v", ErrInvalidState, next)
	}

	return next, nil
}

// States enumerates every valid state, villagers then guards ascending, boat
// on the left before the right.
func (r Rules) States() []State {
	var out []State
	for v := 0; v <= r.Villagers; v++ {
		for g := 0; g <= r.Guards; g++ {
			for _, left := range []bool{true, false} {
				s := State{Villagers: v, Guards: g, BoatLeft: left}
				if r.Valid(s) {
					out = append(out, s)
				}
			}
		}
	}

	return out
}

// Graph materializes the directed transition graph: every valid state and, for
// each, one edge of cost 1 per applicable action in Actions order.
// Negative totals fail with ErrInvalidState.
func (r Rules) Graph() (*core.Table[State], error) {
	if r.Villagers < 0 || r.Guards < 0 {
		return nil, fmt.Errorf("%w: totals %d/%d", ErrInvalidState, r.Villagers, r.Guards)
	}

	t := core.NewTable[State](core.WithDirected(true))
	states := r.States()
	for _, s := range states {
		t.AddState(s)
	}
	for _, s := range states {
		for _, a := range Actions {
			next, err := r.Apply(s, a)
			if err != nil {
				continue
			}
			if err = t.AddEdge(s, next, 1); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// Render draws both banks and the boat, e.g. "VVV GGG |B~~~ |  ".
func (r Rules) Render(s State) string {
	var b strings.Builder
	bank := func(v, g int) {
		b.WriteString(strings.Repeat("V", v))
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("G", g))
	}

	bank(s.Villagers, s.Guards)
	if s.BoatLeft {
		b.WriteString(" |B~~~| ")
	} else {
		b.WriteString(" |~~~B| ")
	}
	bank(r.Villagers-s.Villagers, r.Guards-s.Guards)

	return b.String()
}
