// Package puzzle: sliding-tile heuristics.
//
// All heuristics are built for one goal board and ignore the blank:
//
//	Hamming          misplaced tiles                                 admissible
//	Manhattan        Σ |Δrow| + |Δcol| per tile                       admissible, consistent
//	LinearConflict   Manhattan + 2 per reversed pair in a goal line   informative, see below
//	Gaschnig         swaps needed when any tile may jump to the blank admissible, dominates Hamming
//
// LinearConflict counts every reversed pair, not the minimum number of tiles
// that must leave the line, so on lines with three or more mutually reversed
// tiles it can overestimate. A* with it is not guaranteed optimal.

package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsearch/heuristic"
)

// ErrUnknownHeuristic is returned by NewHeuristic for an unrecognised name.
var ErrUnknownHeuristic = errors.New("puzzle: unknown heuristic")

// Canonical heuristic names.
const (
	HeuristicHamming        = "hamming"
	HeuristicManhattan      = "manhattan"
	HeuristicLinearConflict = "linear_conflict"
	HeuristicGaschnig       = "gaschnig"
)

var heuristicAliases = map[string]string{
	"hamming": HeuristicHamming, "h": HeuristicHamming,
	"manhattan": HeuristicManhattan, "m": HeuristicManhattan,
	"linear_conflict": HeuristicLinearConflict, "mlc": HeuristicLinearConflict,
	"manhattan_lc": HeuristicLinearConflict, "lc": HeuristicLinearConflict,
	"gaschnig": HeuristicGaschnig, "g": HeuristicGaschnig,
}

// HeuristicNames returns the canonical heuristic names, sorted.
func HeuristicNames() []string {
	out := []string{HeuristicHamming, HeuristicManhattan, HeuristicLinearConflict, HeuristicGaschnig}
	sort.Strings(out)

	return out
}

// CanonicalHeuristic resolves a name or alias, case-insensitively.
func CanonicalHeuristic(name string) (string, error) {
	if c, ok := heuristicAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// NewHeuristic builds the named heuristic for goal.
func NewHeuristic(name string, goal Board) (heuristic.Heuristic[Board], error) {
	c, err := CanonicalHeuristic(name)
	if err != nil {
		return nil, err
	}
	switch c {
	case HeuristicHamming:
		return Hamming(goal), nil
	case HeuristicManhattan:
		return Manhattan(goal), nil
	case HeuristicLinearConflict:
		return LinearConflict(goal), nil
	default:
		return Gaschnig(goal), nil
	}
}

// goalIndex maps each tile to its goal cell.
func goalIndex(goal Board) []int {
	idx := make([]int, goal.Len())
	for i := 0; i < goal.Len(); i++ {
		idx[goal.Tile(i)] = i
	}

	return idx
}

// guard wraps a pure estimate with the board-size check.
func guard(goal Board, f func(s Board) int) heuristic.Func[Board] {
	return func(s Board) (float64, error) {
		if s.n != goal.n {
			return 0, fmt.Errorf("%w: %w: %d×%d board for %d×%d goal",
				heuristic.ErrUnknownState, ErrSizeMismatch, s.n, s.n, goal.n, goal.n)
		}
		return float64(f(s)), nil
	}
}

// Hamming counts tiles, blank excluded, not on their goal cell.
func Hamming(goal Board) heuristic.Func[Board] {
	return guard(goal, func(s Board) int {
		miss := 0
		for i := 0; i < s.Len(); i++ {
			if v := s.Tile(i); v != 0 && v != goal.Tile(i) {
				miss++
			}
		}
		return miss
	})
}

// Manhattan sums the grid distance of every tile to its goal cell.
func Manhattan(goal Board) heuristic.Func[Board] {
	at := goalIndex(goal)

	return guard(goal, func(s Board) int { return manhattan(s, at) })
}

func manhattan(s Board, at []int) int {
	n := int(s.n)
	total := 0
	for i := 0; i < s.Len(); i++ {
		v := s.Tile(i)
		if v == 0 {
			continue
		}
		total += abs(i/n-at[v]/n) + abs(i%n-at[v]%n)
	}

	return total
}

// LinearConflict adds 2 to Manhattan for every pair of tiles that sit in
// their goal row (or column) in reversed order.
func LinearConflict(goal Board) heuristic.Func[Board] {
	at := goalIndex(goal)

	return guard(goal, func(s Board) int {
		n := int(s.n)
		conflicts := 0
		line := make([]int, 0, n)
		// rows: tiles whose goal row is r, compared by goal column
		for r := 0; r < n; r++ {
			line = line[:0]
			for c := 0; c < n; c++ {
				if v := s.At(r, c); v != 0 && at[v]/n == r {
					line = append(line, at[v]%n)
				}
			}
			conflicts += reversedPairs(line)
		}
		// columns: tiles whose goal column is c, compared by goal row
		for c := 0; c < n; c++ {
			line = line[:0]
			for r := 0; r < n; r++ {
				if v := s.At(r, c); v != 0 && at[v]%n == c {
					line = append(line, at[v]/n)
				}
			}
			conflicts += reversedPairs(line)
		}
		return manhattan(s, at) + 2*conflicts
	})
}

// reversedPairs counts i < j with line[i] > line[j].
func reversedPairs(line []int) int {
	k := 0
	for i := 0; i < len(line); i++ {
		for j := i + 1; j < len(line); j++ {
			if line[i] > line[j] {
				k++
			}
		}
	}

	return k
}

// Gaschnig counts the swaps needed to reach goal when any tile may move into
// the blank in one step: while the blank is off its goal cell, the tile that
// belongs there jumps in; otherwise the first misplaced tile jumps into the
// blank.
func Gaschnig(goal Board) heuristic.Func[Board] {
	at := goalIndex(goal)
	goalBlank := at[0]

	return guard(goal, func(s Board) int {
		if s == goal {
			return 0
		}
		cells := []byte(s.cells)
		pos := make([]int, len(cells)) // tile → current cell
		for i, v := range cells {
			pos[v] = i
		}
		misplaced := 0
		for i, v := range cells {
			if v != 0 && at[v] != i {
				misplaced++
			}
		}

		swaps := 0
		for misplaced > 0 || pos[0] != goalBlank {
			blank := pos[0]
			var mover int
			if blank != goalBlank {
				mover = int(goal.cells[blank])
			} else {
				mover = firstMisplaced(cells, at)
			}
			from := pos[mover]
			cells[blank], cells[from] = cells[from], cells[blank]
			pos[mover], pos[0] = blank, from
			if at[mover] == blank {
				misplaced--
			} else if at[mover] == from {
				misplaced++
			}
			swaps++
		}
		return swaps
	})
}

func firstMisplaced(cells []byte, at []int) int {
	for i, v := range cells {
		if v != 0 && at[v] != i {
			return int(v)
		}
	}

	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
