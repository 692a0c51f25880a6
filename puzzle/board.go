// Package puzzle: the immutable Board state.

package puzzle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for board construction and comparison.
var (
	// ErrNotSquare indicates that the tile count is not n² for some 2 ≤ n ≤ MaxSize.
	ErrNotSquare = errors.New("puzzle: tile count is not a supported square")

	// ErrBadTiles indicates that the tiles are not a permutation of 0..n²-1.
	ErrBadTiles = errors.New("puzzle: tiles are not a permutation of 0..n²-1")

	// ErrSizeMismatch indicates two boards of different sizes were combined.
	ErrSizeMismatch = errors.New("puzzle: board size mismatch")

	// ErrUnsolvable indicates that the goal cannot be reached from the start.
	ErrUnsolvable = errors.New("puzzle: goal unreachable from start")
)

// MaxSize is the largest supported side length; tiles are stored as bytes.
const MaxSize = 15

// Board is an n×n sliding-tile configuration in row-major order, 0 being the
// blank. Board is immutable and comparable, so it can be used directly as a
// search state and map key.
type Board struct {
	n     uint8
	cells string // one byte per tile
}

// NewBoard validates tiles and builds a Board.
// Returns ErrNotSquare or ErrBadTiles.
func NewBoard(tiles []int) (Board, error) {
	n := int(math.Sqrt(float64(len(tiles))))
	for n*n < len(tiles) {
		n++
	}
	if n*n != len(tiles) || n < 2 || n > MaxSize {
		return Board{}, fmt.Errorf("%w: %d tiles", ErrNotSquare, len(tiles))
	}

	seen := make([]bool, len(tiles))
	cells := make([]byte, len(tiles))
	for i, v := range tiles {
		if v < 0 || v >= len(tiles) || seen[v] {
			return Board{}, fmt.Errorf("%w: tile %d at index %d", ErrBadTiles, v, i)
		}
		seen[v] = true
		cells[i] = byte(v)
	}

	return Board{n: uint8(n), cells: string(cells)}, nil
}

// MustBoard is NewBoard that panics on invalid input. Intended for literals.
func MustBoard(tiles ...int) Board {
	b, err := NewBoard(tiles)
	if err != nil {
		panic(err)
	}

	return b
}

// Goal returns the canonical goal 1, 2, …, n²-1, 0 for side n.
// Panics if n is outside 2..MaxSize.
func Goal(n int) Board {
	tiles := make([]int, n*n)
	for i := range tiles {
		tiles[i] = i + 1
	}
	tiles[len(tiles)-1] = 0

	return MustBoard(tiles...)
}

// Size returns the side length n.
func (b Board) Size() int { return int(b.n) }

// Len returns the number of cells n².
func (b Board) Len() int { return len(b.cells) }

// Tile returns the tile at row-major index i.
func (b Board) Tile(i int) int { return int(b.cells[i]) }

// At returns the tile at row r, column c.
func (b Board) At(r, c int) int { return int(b.cells[r*int(b.n)+c]) }

// Blank returns the row-major index of the blank.
func (b Board) Blank() int { return strings.IndexByte(b.cells, 0) }

// Tiles returns the tiles in row-major order.
func (b Board) Tiles() []int {
	out := make([]int, len(b.cells))
	for i := range out {
		out[i] = int(b.cells[i])
	}

	return out
}

// IsZero reports whether b is the zero Board (never produced by NewBoard).
func (b Board) IsZero() bool { return b.n == 0 }

// String formats the board as a tuple, e.g. (1,2,3,4,5,6,7,8,0).
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < len(b.cells); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(b.cells[i])))
	}
	sb.WriteByte(')')

	return sb.String()
}

// ParseBoard reads a comma- or space-separated tile list, with optional
// surrounding parentheses, e.g. "(6,8,3,1,2,4,7,0,5)".
func ParseBoard(s string) (Board, error) {
	s = strings.Trim(strings.TrimSpace(s), "()[]")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	tiles := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q", ErrBadTiles, f)
		}
		tiles = append(tiles, v)
	}

	return NewBoard(tiles)
}

// swap returns a copy of b with cells i and j exchanged.
func (b Board) swap(i, j int) Board {
	cells := []byte(b.cells)
	cells[i], cells[j] = cells[j], cells[i]

	return Board{n: b.n, cells: string(cells)}
}
