package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzle"
)

func TestSuccessors_Order(t *testing.T) {
	// blank in the centre: up, down, left, right
	b := puzzle.MustBoard(1, 2, 3, 4, 0, 5, 6, 7, 8)
	succ := puzzle.Successors(b)
	require.Len(t, succ, 4)
	assert.Equal(t, puzzle.MustBoard(1, 0, 3, 4, 2, 5, 6, 7, 8), succ[0].To)
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 4, 7, 5, 6, 0, 8), succ[1].To)
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 0, 4, 5, 6, 7, 8), succ[2].To)
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 4, 5, 0, 6, 7, 8), succ[3].To)
	for _, e := range succ {
		assert.Equal(t, 1.0, e.Cost)
	}

	// blank in the bottom-right corner: up, left only
	corner := puzzle.Successors(puzzle.Goal(3))
	require.Len(t, corner, 2)
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 4, 5, 0, 7, 8, 6), corner[0].To)
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 0, 8), corner[1].To)
}

func TestSuccessors_DoNotMutate(t *testing.T) {
	b := puzzle.MustBoard(1, 2, 3, 4, 0, 5, 6, 7, 8)
	before := b.String()
	_ = puzzle.Successors(b)
	assert.Equal(t, before, b.String())
}

func TestNewGraph_LazyAnyBoard(t *testing.T) {
	g := puzzle.NewGraph()
	assert.True(t, g.Has(puzzle.Goal(5)))
	assert.Len(t, g.Successors(puzzle.Goal(5)), 2)
}

func TestMove(t *testing.T) {
	prev := puzzle.MustBoard(1, 2, 3, 4, 0, 5, 6, 7, 8)
	for _, e := range puzzle.Successors(prev) {
		d, tile := puzzle.Move(prev, e.To)
		assert.NotEqual(t, puzzle.Invalid, d)
		assert.Equal(t, e.To.Tile(prev.Blank()), tile)
	}

	d, tile := puzzle.Move(prev, puzzle.MustBoard(1, 0, 3, 4, 2, 5, 6, 7, 8))
	assert.Equal(t, puzzle.Up, d)
	assert.Equal(t, 2, tile)
	assert.Equal(t, "↑", d.String())

	d, _ = puzzle.Move(prev, puzzle.MustBoard(1, 2, 3, 4, 5, 0, 6, 7, 8))
	assert.Equal(t, "→", d.String())

	// not one move apart
	d, _ = puzzle.Move(prev, puzzle.Goal(3))
	assert.Equal(t, puzzle.Invalid, d)
	assert.Equal(t, "?", d.String())
	d, _ = puzzle.Move(prev, puzzle.Goal(2))
	assert.Equal(t, puzzle.Invalid, d)
}

func TestRender(t *testing.T) {
	want := " 6  8  3\n" +
		" 1  2  4\n" +
		" 7     5\n"
	assert.Equal(t, want, puzzle.Render(puzzle.MustBoard(6, 8, 3, 1, 2, 4, 7, 0, 5)))
}
