package river_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/river"
)

func TestValid(t *testing.T) {
	r := river.DefaultRules()
	cases := []struct {
		s    river.State
		want bool
	}{
		{river.State{3, 3, true}, true},
		{river.State{0, 0, false}, true},
		{river.State{1, 2, true}, false},  // left: 1 villager, 2 guards
		{river.State{2, 1, false}, false}, // right: 1 villager, 2 guards
		{river.State{0, 3, true}, true},   // no villagers on the left
		{river.State{4, 0, true}, false},
		{river.State{-1, 0, true}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.Valid(tc.s), "%v", tc.s)
	}
}

func TestApply(t *testing.T) {
	r := river.DefaultRules()

	next, err := r.Apply(r.Initial(), river.Action{Guards: 2})
	require.NoError(t, err)
	assert.Equal(t, river.State{Villagers: 3, Guards: 1, BoatLeft: false}, next)

	back, err := r.Apply(next, river.Action{Guards: 1})
	require.NoError(t, err)
	assert.Equal(t, river.State{Villagers: 3, Guards: 2, BoatLeft: true}, back)

	_, err = r.Apply(r.Initial(), river.Action{Villagers: 1})
	assert.ErrorIs(t, err, river.ErrInvalidState, "leaves 2 villagers with 3 guards")

	_, err = r.Apply(r.Initial(), river.Action{})
	assert.ErrorIs(t, err, river.ErrInvalidState)
	_, err = r.Apply(r.Initial(), river.Action{Villagers: 2, Guards: 1})
	assert.ErrorIs(t, err, river.ErrInvalidState)
}

func TestGraph(t *testing.T) {
	r := river.DefaultRules()
	g, err := r.Graph()
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 20, g.Len())
	assert.Equal(t, r.States(), g.States())

	edges := 0
	for _, s := range g.States() {
		for _, e := range g.Successors(s) {
			assert.Equal(t, 1.0, e.Cost)
			assert.NotEqual(t, s.BoatLeft, e.To.BoatLeft)
			edges++
		}
	}
	assert.Equal(t, 34, edges)

	_, err = river.Rules{Villagers: -1}.Graph()
	assert.ErrorIs(t, err, river.ErrInvalidState)
}

func TestBFS_Classic(t *testing.T) {
	r := river.DefaultRules()
	g, err := r.Graph()
	require.NoError(t, err)

	res, err := bfs.BFS[river.State](g, r.Initial(), r.Goal())
	require.NoError(t, err)
	require.True(t, res.Found())

	// 11 crossings, 12 states including both endpoints.
	assert.Equal(t, 11, res.Steps())
	assert.Equal(t, 11.0, res.Cost)
	assert.Equal(t, 15, res.Expanded)
	assert.Equal(t, []river.State{
		{3, 3, true}, {3, 1, false}, {3, 2, true}, {3, 0, false},
		{3, 1, true}, {1, 1, false}, {2, 2, true}, {0, 2, false},
		{0, 3, true}, {0, 1, false}, {1, 1, true}, {0, 0, false},
	}, res.Path)

	for i := 1; i < len(res.Path); i++ {
		assert.True(t, r.Valid(res.Path[i]))
	}
}

func TestOtherSearches_AgreeOnLength(t *testing.T) {
	r := river.DefaultRules()
	g, err := r.Graph()
	require.NoError(t, err)

	d, err := dfs.DFS[river.State](g, r.Initial(), r.Goal())
	require.NoError(t, err)
	assert.Equal(t, 11, d.Steps())
	assert.Equal(t, 12, d.Expanded)

	u, err := bestfirst.UniformCost[river.State](g, r.Initial(), r.Goal())
	require.NoError(t, err)
	assert.Equal(t, 11.0, u.Cost)
	assert.Equal(t, 15, u.Expanded)
}

func TestUnsolvableTotals(t *testing.T) {
	r := river.Rules{Villagers: 4, Guards: 4}
	g, err := r.Graph()
	require.NoError(t, err)
	assert.Equal(t, 26, g.Len())

	res, err := bfs.BFS[river.State](g, r.Initial(), r.Goal())
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, 11, res.Expanded)
}

func TestRender(t *testing.T) {
	r := river.DefaultRules()
	assert.Equal(t, "VVV GGG |B~~~|  ", r.Render(r.Initial()))
	assert.Equal(t, "V G |~~~B| VV GG", r.Render(river.State{1, 1, false}))
	assert.Equal(t, "(3,1,R)", river.State{3, 1, false}.String())
}
