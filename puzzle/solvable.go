// Package puzzle: inversion parity and random solvable instances.

package puzzle

import (
	"fmt"
	"math/rand"
)

// Inversions counts pairs of tiles, blank excluded, that appear in reversed
// order in row-major reading.
// Complexity: O(n⁴) for an n×n board, fine for the sizes searched.
func Inversions(b Board) int {
	inv := 0
	for i := 0; i < b.Len(); i++ {
		a := b.cells[i]
		if a == 0 {
			continue
		}
		for j := i + 1; j < b.Len(); j++ {
			if c := b.cells[j]; c != 0 && a > c {
				inv++
			}
		}
	}

	return inv
}

// rowFromBottom returns the 1-based row of the blank counted from the bottom.
func rowFromBottom(b Board) int {
	return int(b.n) - b.Blank()/int(b.n)
}

// Solvable reports whether goal is reachable from start by blank moves.
//
// Odd n: the inversion parities of start and goal must match.
// Even n: inversions plus the blank's row from the bottom must have matching
// parities.
func Solvable(start, goal Board) (bool, error) {
	if start.n != goal.n {
		return false, fmt.Errorf("%w: %d×%d vs %d×%d", ErrSizeMismatch, start.n, start.n, goal.n, goal.n)
	}
	ps, pg := Inversions(start), Inversions(goal)
	if start.n%2 == 0 {
		ps += rowFromBottom(start)
		pg += rowFromBottom(goal)
	}

	return ps%2 == pg%2, nil
}

// RequireSolvable returns ErrUnsolvable when goal cannot be reached from start.
func RequireSolvable(start, goal Board) error {
	ok, err := Solvable(start, goal)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %v → %v", ErrUnsolvable, start, goal)
	}

	return nil
}

// Shuffle performs a random walk of max(1, steps) blank moves from Goal(n) and
// returns the final board, which is solvable by construction. The walk never
// undoes the previous move unless it is the only move available.
// A nil rng uses the default deterministic stream (see NewRand).
func Shuffle(n, steps int, rng *rand.Rand) Board {
	if rng == nil {
		rng = NewRand(0)
	}
	if steps < 1 {
		steps = 1
	}

	b := Goal(n)
	prev := -1
	for k := 0; k < steps; k++ {
		blank := b.Blank()
		r, c := blank/n, blank%n
		moves := make([]int, 0, 4)
		if r > 0 {
			moves = append(moves, blank-n)
		}
		if r < n-1 {
			moves = append(moves, blank+n)
		}
		if c > 0 {
			moves = append(moves, blank-1)
		}
		if c < n-1 {
			moves = append(moves, blank+1)
		}
		if len(moves) > 1 {
			for i, m := range moves {
				if m == prev {
					moves = append(moves[:i], moves[i+1:]...)
					break
				}
			}
		}
		next := moves[rng.Intn(len(moves))]
		b = b.swap(blank, next)
		prev = blank
	}

	return b
}
