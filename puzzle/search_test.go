package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/puzzle"
)

// validTrajectory checks that consecutive boards are one move apart.
func validTrajectory(t *testing.T, path []puzzle.Board) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		d, _ := puzzle.Move(path[i-1], path[i])
		require.NotEqual(t, puzzle.Invalid, d, "step %d", i)
	}
}

// TestAStar_EightPuzzle pins the reference 8-puzzle instance.
func TestAStar_EightPuzzle(t *testing.T) {
	g := puzzle.NewGraph()
	goal := puzzle.Goal(3)

	tests := []struct {
		name     string
		expanded int
	}{
		{puzzle.HeuristicHamming, 2445},
		{puzzle.HeuristicManhattan, 331},
		{puzzle.HeuristicLinearConflict, 211},
		{puzzle.HeuristicGaschnig, 2141},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := puzzle.NewHeuristic(tt.name, goal)
			require.NoError(t, err)

			res, err := bestfirst.AStar[puzzle.Board](g, start8, goal, h)
			require.NoError(t, err)
			assert.Equal(t, 19, res.Steps())
			assert.Equal(t, float64(res.Steps()), res.Cost)
			assert.Equal(t, tt.expanded, res.Expanded)
			assert.Equal(t, start8, res.Path[0])
			assert.Equal(t, goal, res.Path[len(res.Path)-1])
			validTrajectory(t, res.Path)
		})
	}
}

// TestAStar_GaschnigNeverExpandsMoreThanHamming compares the two on the
// reference instance and four deeper ones.
func TestAStar_GaschnigNeverExpandsMoreThanHamming(t *testing.T) {
	g := puzzle.NewGraph()
	goal := puzzle.Goal(3)
	ham, gas := puzzle.Hamming(goal), puzzle.Gaschnig(goal)

	boards := []puzzle.Board{
		start8,
		puzzle.MustBoard(6, 1, 5, 7, 0, 8, 2, 3, 4),
		puzzle.MustBoard(5, 3, 2, 4, 6, 8, 7, 1, 0),
		puzzle.MustBoard(1, 6, 5, 2, 4, 7, 0, 8, 3),
		puzzle.MustBoard(2, 4, 1, 5, 6, 8, 0, 7, 3),
	}
	for _, b := range boards {
		rh, err := bestfirst.AStar[puzzle.Board](g, b, goal, ham)
		require.NoError(t, err)
		rg, err := bestfirst.AStar[puzzle.Board](g, b, goal, gas)
		require.NoError(t, err)
		assert.Equal(t, rh.Cost, rg.Cost, b.String())
		assert.LessOrEqual(t, rg.Expanded, rh.Expanded, b.String())
	}
}

func TestGreedy_EightPuzzle(t *testing.T) {
	g := puzzle.NewGraph()
	goal := puzzle.Goal(3)

	tests := []struct {
		name            string
		steps, expanded int
	}{
		{puzzle.HeuristicHamming, 35, 902},
		{puzzle.HeuristicManhattan, 55, 601},
		{puzzle.HeuristicLinearConflict, 55, 160},
		{puzzle.HeuristicGaschnig, 35, 272},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := puzzle.NewHeuristic(tt.name, goal)
			require.NoError(t, err)

			res, err := bestfirst.GreedyBestFirst[puzzle.Board](g, start8, goal, h)
			require.NoError(t, err)
			assert.Equal(t, tt.steps, res.Steps())
			assert.Equal(t, float64(tt.steps), res.Cost)
			assert.Equal(t, tt.expanded, res.Expanded)
			validTrajectory(t, res.Path)
		})
	}
}

func TestUniformCost_EightPuzzle(t *testing.T) {
	if testing.Short() {
		t.Skip("expands ~35k boards")
	}
	res, err := bestfirst.UniformCost[puzzle.Board](puzzle.NewGraph(), start8, puzzle.Goal(3))
	require.NoError(t, err)
	assert.Equal(t, 19, res.Steps())
	assert.Equal(t, 35106, res.Expanded)

	zero, err := bestfirst.AStar[puzzle.Board](puzzle.NewGraph(), start8, puzzle.Goal(3), heuristic.Zero[puzzle.Board]{})
	require.NoError(t, err)
	assert.Equal(t, res, zero)
}

// TestAStar_FifteenPuzzle solves shallow 4×4 instances with Manhattan.
func TestAStar_FifteenPuzzle(t *testing.T) {
	g := puzzle.NewGraph()
	goal := puzzle.Goal(4)
	h := puzzle.Manhattan(goal)
	rng := puzzle.NewRand(77)
	for i := 0; i < 5; i++ {
		b := puzzle.Shuffle(4, 20, rng)
		res, err := bestfirst.AStar[puzzle.Board](g, b, goal, h)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Steps(), 20)

		replayed, _, err := core.PathCost[puzzle.Board](g, res.Path, core.RaiseOnMissing)
		require.NoError(t, err)
		assert.Equal(t, res.Cost, replayed)
	}
}
