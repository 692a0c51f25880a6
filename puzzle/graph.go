// Package puzzle: the lazy move graph, move description and rendering.

package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Direction is the direction the blank moves in one step.
type Direction int

const (
	// Up moves the blank one row up.
	Up Direction = iota
	// Down moves the blank one row down.
	Down
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right
	// Invalid marks two boards that are not one move apart.
	Invalid
)

// String returns an arrow for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "↑"
	case Down:
		return "↓"
	case Left:
		return "←"
	case Right:
		return "→"
	default:
		return "?"
	}
}

// Successors returns the boards one blank move away, in up, down, left,
// right order, each at cost 1.
// Complexity: O(n²) per successor for the copy.
func Successors(b Board) []core.Edge[Board] {
	n := int(b.n)
	i0 := b.Blank()
	r, c := i0/n, i0%n

	out := make([]core.Edge[Board], 0, 4)
	if r > 0 {
		out = append(out, core.Edge[Board]{To: b.swap(i0, i0-n), Cost: 1})
	}
	if r < n-1 {
		out = append(out, core.Edge[Board]{To: b.swap(i0, i0+n), Cost: 1})
	}
	if c > 0 {
		out = append(out, core.Edge[Board]{To: b.swap(i0, i0-1), Cost: 1})
	}
	if c < n-1 {
		out = append(out, core.Edge[Board]{To: b.swap(i0, i0+1), Cost: 1})
	}

	return out
}

// NewGraph returns the lazy sliding-tile graph. It holds no state and is safe
// for concurrent searches.
func NewGraph() core.LazyGraph[Board] {
	return Successors
}

// Move describes the step prev→next: the direction the blank moved and the
// tile that slid into the blank's old cell. Boards that are not one move
// apart yield Invalid.
func Move(prev, next Board) (Direction, int) {
	if prev.n != next.n || prev.IsZero() {
		return Invalid, 0
	}
	n := int(prev.n)
	p, q := prev.Blank(), next.Blank()
	dr, dc := q/n-p/n, q%n-p%n

	d := Invalid
	switch {
	case dr == -1 && dc == 0:
		d = Up
	case dr == 1 && dc == 0:
		d = Down
	case dr == 0 && dc == -1:
		d = Left
	case dr == 0 && dc == 1:
		d = Right
	}
	if d == Invalid || prev.swap(p, q) != next {
		return Invalid, 0
	}

	return d, next.Tile(p)
}

// Render draws the board as rows of right-aligned tiles with the blank left
// empty, one row per line.
func Render(b Board) string {
	n := int(b.n)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.At(r, c); v != 0 {
				fmt.Fprintf(&sb, "%2d", v)
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
