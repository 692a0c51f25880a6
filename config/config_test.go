package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LVSEARCH_CONFIG", "")
	t.Setenv("LVSEARCH_LOG_LEVEL", "")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 3, c.Bench.Size)
	assert.Equal(t, []string{"a*", "greedy"}, c.Bench.Algorithms)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	body := `
logging:
  level: debug
  pretty: true
bench:
  size: 4
  count: 12
  algorithms: [ucs, a*]
  heuristics: [manhattan]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
	assert.Equal(t, 4, c.Bench.Size)
	assert.Equal(t, 12, c.Bench.Count)
	assert.Equal(t, 100, c.Bench.Shuffle, "unset keys keep defaults")
	assert.Equal(t, []string{"ucs", "a*"}, c.Bench.Algorithms)
	assert.Equal(t, []string{"manhattan"}, c.Bench.Heuristics)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  count: 12\n"), 0o600))

	t.Setenv("LVSEARCH_CONFIG", path)
	t.Setenv("LVSEARCH_LOG_LEVEL", "warn")
	t.Setenv("LVSEARCH_BENCH_COUNT", "7")
	t.Setenv("LVSEARCH_BENCH_SEED", "42")
	t.Setenv("LVSEARCH_BENCH_WORKERS", "not-a-number")
	t.Setenv("LVSEARCH_BENCH_HEURISTICS", " hamming , gaschnig ,")
	t.Setenv("LVSEARCH_BENCH_OUT", "")

	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, 7, c.Bench.Count)
	assert.Equal(t, int64(42), c.Bench.Seed)
	assert.Equal(t, 0, c.Bench.Workers, "unparsable override is ignored")
	assert.Equal(t, []string{"hamming", "gaschnig"}, c.Bench.Heuristics)
	assert.Empty(t, c.Bench.Out)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("bench: [unclosed"), 0o600))
	_, err = config.Load(bad)
	assert.Error(t, err)

	t.Setenv("LVSEARCH_BENCH_ALGORITHMS", "dijkstra")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	mutate := map[string]func(*config.Config){
		"size too small":   func(c *config.Config) { c.Bench.Size = 1 },
		"size too large":   func(c *config.Config) { c.Bench.Size = 16 },
		"negative count":   func(c *config.Config) { c.Bench.Count = -1 },
		"negative workers": func(c *config.Config) { c.Bench.Workers = -2 },
		"no algorithms":    func(c *config.Config) { c.Bench.Algorithms = nil },
		"bad heuristic":    func(c *config.Config) { c.Bench.Heuristics = []string{"euclid"} },
		"informed without heuristic": func(c *config.Config) {
			c.Bench.Heuristics = nil
		},
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			fn(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}

	c := config.Default()
	c.Bench.Algorithms = []string{"bfs", "ucs"}
	c.Bench.Heuristics = nil
	assert.NoError(t, c.Validate(), "uninformed algorithms need no heuristic")
}
