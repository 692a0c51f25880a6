package csp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/csp"
)

func TestColorBolivia(t *testing.T) {
	got, err := csp.ColorBolivia(csp.Colors)
	require.NoError(t, err)
	require.Len(t, got, len(csp.Departments))

	assert.Empty(t, csp.Conflicts(csp.Borders, got, csp.Departments))
	for _, d := range csp.Departments {
		assert.Contains(t, csp.Colors, got[d])
	}
	assert.Equal(t, "red", got["Pando"], "first value of the first variable")
}

func TestColorBolivia_TwoColors(t *testing.T) {
	_, err := csp.ColorBolivia([]string{"red", "yellow"})
	assert.ErrorIs(t, err, csp.ErrNoAssignment)
}

func TestNeighborsDiffer_Symmetric(t *testing.T) {
	// Only a→b is listed, yet b must still avoid a's value.
	c := csp.NeighborsDiffer[string, int](map[string][]string{"a": {"b"}})

	assert.False(t, c.Allowed(map[string]int{"a": 1}, "b", 1))
	assert.True(t, c.Allowed(map[string]int{"a": 1}, "b", 2))
	assert.True(t, c.Allowed(map[string]int{}, "a", 1))
}

func TestBacktrack_UndoesChoices(t *testing.T) {
	// x must be 2 because y can only differ from x when x != 1.
	vars := []string{"x", "y"}
	domains := map[string][]int{"x": {1, 2}, "y": {1}}
	c := csp.NeighborsDiffer[string, int](map[string][]string{"x": {"y"}})

	got, err := csp.Backtrack[string, int](vars, domains, c)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"x": 2, "y": 1}, got)
}

func TestBacktrack_Edges(t *testing.T) {
	always := csp.ConstraintFunc[string, int](func(map[string]int, string, int) bool { return true })

	got, err := csp.Backtrack[string, int](nil, map[string][]int{}, always)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = csp.Backtrack[string, int]([]string{"x"}, map[string][]int{}, always)
	assert.ErrorIs(t, err, csp.ErrMissingDomain)

	_, err = csp.Backtrack[string, int]([]string{"x"}, map[string][]int{"x": {}}, always)
	assert.ErrorIs(t, err, csp.ErrNoAssignment)
}

func TestConflicts(t *testing.T) {
	adj := map[string][]string{"a": {"b", "c"}, "b": {"a"}}
	got := csp.Conflicts(adj, map[string]int{"a": 1, "b": 1, "c": 1}, []string{"a", "b"})
	assert.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}}, got)
}
