package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/puzzle"
)

func TestNewBoard_Validation(t *testing.T) {
	_, err := puzzle.NewBoard([]int{1, 2, 0})
	assert.ErrorIs(t, err, puzzle.ErrNotSquare)
	_, err = puzzle.NewBoard([]int{0})
	assert.ErrorIs(t, err, puzzle.ErrNotSquare)
	_, err = puzzle.NewBoard(nil)
	assert.ErrorIs(t, err, puzzle.ErrNotSquare)

	_, err = puzzle.NewBoard([]int{1, 1, 2, 0})
	assert.ErrorIs(t, err, puzzle.ErrBadTiles)
	_, err = puzzle.NewBoard([]int{1, 2, 3, 4})
	assert.ErrorIs(t, err, puzzle.ErrBadTiles)
	_, err = puzzle.NewBoard([]int{1, 2, -1, 0})
	assert.ErrorIs(t, err, puzzle.ErrBadTiles)

	assert.Panics(t, func() { puzzle.MustBoard(1, 2, 3) })
}

func TestBoard_Accessors(t *testing.T) {
	b := puzzle.MustBoard(6, 8, 3, 1, 2, 4, 7, 0, 5)
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, 9, b.Len())
	assert.Equal(t, 7, b.Blank())
	assert.Equal(t, 4, b.At(1, 2))
	assert.Equal(t, 6, b.Tile(0))
	assert.Equal(t, []int{6, 8, 3, 1, 2, 4, 7, 0, 5}, b.Tiles())
	assert.Equal(t, "(6,8,3,1,2,4,7,0,5)", b.String())
	assert.False(t, b.IsZero())
	assert.True(t, puzzle.Board{}.IsZero())
}

func TestBoard_Comparable(t *testing.T) {
	a := puzzle.MustBoard(1, 2, 3, 0)
	b := puzzle.MustBoard(1, 2, 3, 0)
	c := puzzle.MustBoard(1, 2, 0, 3)
	assert.True(t, a == b)
	assert.False(t, a == c)

	seen := map[puzzle.Board]int{a: 1}
	seen[b]++
	assert.Equal(t, 2, seen[a])
}

func TestGoal(t *testing.T) {
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 4, 5, 6, 7, 8, 0), puzzle.Goal(3))
	assert.Equal(t, puzzle.MustBoard(1, 2, 3, 0), puzzle.Goal(2))
	assert.Equal(t, 16, puzzle.Goal(4).Len())
}

func TestParseBoard(t *testing.T) {
	for _, in := range []string{"(6,8,3,1,2,4,7,0,5)", "6 8 3 1 2 4 7 0 5", "[6, 8, 3, 1, 2, 4, 7, 0, 5]"} {
		b, err := puzzle.ParseBoard(in)
		require.NoError(t, err, in)
		assert.Equal(t, puzzle.MustBoard(6, 8, 3, 1, 2, 4, 7, 0, 5), b, in)
	}

	_, err := puzzle.ParseBoard("1,2,x,0")
	assert.ErrorIs(t, err, puzzle.ErrBadTiles)
}
