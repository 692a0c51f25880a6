// Package config loads lvsearch settings: built-in defaults, then an optional
// YAML file, then LVSEARCH_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVSEARCH_"

// ErrInvalidConfig indicates a value Validate rejects.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Logging Logging `yaml:"logging"`
	Bench   Bench   `yaml:"bench"`
}

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Bench drives the sliding-puzzle benchmark.
type Bench struct {
	Size          int      `yaml:"size"`
	Count         int      `yaml:"count"`
	Shuffle       int      `yaml:"shuffle"`
	Seed          int64    `yaml:"seed"`    // 0 draws a random seed
	Workers       int      `yaml:"workers"` // 0 uses every CPU
	Algorithms    []string `yaml:"algorithms"`
	Heuristics    []string `yaml:"heuristics"`
	Out           string   `yaml:"out"` // empty skips the CSV
	MaxExpansions int      `yaml:"max_expansions"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Bench.Size = 3
	c.Bench.Count = 1000
	c.Bench.Shuffle = 100
	c.Bench.Seed = 0
	c.Bench.Workers = 0
	c.Bench.Algorithms = []string{"a*", "greedy"}
	c.Bench.Heuristics = []string{puzzle.HeuristicHamming, puzzle.HeuristicManhattan, puzzle.HeuristicLinearConflict}
	c.Bench.Out = "results.csv"
	c.Bench.MaxExpansions = 200000

	return c
}

// Load builds a Config. The YAML file is path, or LVSEARCH_CONFIG when path is
// empty; no file at all keeps the defaults. Environment overrides are applied
// last and the result is validated.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&c)

	return c, c.Validate()
}

func applyEnv(c *Config) {
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_PRETTY"); v != "" {
		c.Logging.Pretty = v == "1" || v == "true"
	}
	envInt(EnvPrefix+"BENCH_SIZE", &c.Bench.Size)
	envInt(EnvPrefix+"BENCH_COUNT", &c.Bench.Count)
	envInt(EnvPrefix+"BENCH_SHUFFLE", &c.Bench.Shuffle)
	envInt(EnvPrefix+"BENCH_WORKERS", &c.Bench.Workers)
	envInt(EnvPrefix+"BENCH_MAX_EXPANSIONS", &c.Bench.MaxExpansions)
	if v := os.Getenv(EnvPrefix + "BENCH_SEED"); v != "" {
		var n int64
		if _, err := fmt.Sscan(v, &n); err == nil {
			c.Bench.Seed = n
		}
	}
	if v := os.Getenv(EnvPrefix + "BENCH_ALGORITHMS"); v != "" {
		c.Bench.Algorithms = splitCSV(v)
	}
	if v := os.Getenv(EnvPrefix + "BENCH_HEURISTICS"); v != "" {
		c.Bench.Heuristics = splitCSV(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "BENCH_OUT"); ok {
		c.Bench.Out = v
	}
}

// envInt overwrites dst when key holds a parsable integer.
func envInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	var n int
	if _, err := fmt.Sscan(v, &n); err == nil {
		*dst = n
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// Validate checks ranges and that every algorithm and heuristic name resolves.
func (c Config) Validate() error {
	b := c.Bench
	switch {
	case b.Size < 2 || b.Size > puzzle.MaxSize:
		return fmt.Errorf("%w: bench.size=%d", ErrInvalidConfig, b.Size)
	case b.Count < 0:
		return fmt.Errorf("%w: bench.count=%d", ErrInvalidConfig, b.Count)
	case b.Shuffle < 0:
		return fmt.Errorf("%w: bench.shuffle=%d", ErrInvalidConfig, b.Shuffle)
	case b.Workers < 0:
		return fmt.Errorf("%w: bench.workers=%d", ErrInvalidConfig, b.Workers)
	case b.MaxExpansions < 0:
		return fmt.Errorf("%w: bench.max_expansions=%d", ErrInvalidConfig, b.MaxExpansions)
	case len(b.Algorithms) == 0:
		return fmt.Errorf("%w: bench.algorithms is empty", ErrInvalidConfig)
	}
	informed := false
	for _, name := range b.Algorithms {
		a, err := search.ParseAlgorithm(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		informed = informed || a.Informed()
	}
	if informed && len(b.Heuristics) == 0 {
		return fmt.Errorf("%w: informed algorithms need bench.heuristics", ErrInvalidConfig)
	}
	for _, name := range b.Heuristics {
		if _, err := puzzle.CanonicalHeuristic(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}
