package heuristic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/heuristic"
)

func TestZero(t *testing.T) {
	var h heuristic.Heuristic[string] = heuristic.Zero[string]{}
	v, err := h.Estimate("anything")
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestTable_UnknownStateFailsLoudly(t *testing.T) {
	h := heuristic.Table[string]{"A": 3, "B": 0}

	v, err := h.Estimate("A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = h.Estimate("Atlantis")
	assert.ErrorIs(t, err, heuristic.ErrUnknownState)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestAdapters(t *testing.T) {
	var plain heuristic.Heuristic[int] = heuristic.Plain[int](func(n int) float64 { return float64(n) / 2 })
	v, err := plain.Estimate(5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	boom := errors.New("boom")
	var fallible heuristic.Heuristic[int] = heuristic.Func[int](func(int) (float64, error) { return 0, boom })
	_, err = fallible.Estimate(1)
	assert.ErrorIs(t, err, boom)
}
