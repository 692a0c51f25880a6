// Package search: Solver, the single entry point that binds an Algorithm to a
// graph and heuristic and times each run.

package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// Sentinel errors for Solver construction and runs.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrMissingHeuristic is returned when Greedy or AStar is requested without
	// a heuristic.
	ErrMissingHeuristic = errors.New("search: informed algorithm requires a heuristic")

	// ErrExpansionLimit wraps the expansion-limit error of whichever package
	// ran the search, so callers need a single errors.Is check.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Report is the outcome of one Solve call: the engine Result plus the
// algorithm that produced it and the wall-clock time it took.
type Report[S comparable] struct {
	core.Result[S]

	Algorithm Algorithm
	Duration  time.Duration
}

// SolverOption configures a Solver.
type SolverOption func(*solverConfig)

type solverConfig struct {
	logger        zerolog.Logger
	maxExpansions int
	missingEdge   core.MissingEdgePolicy
	onExpand      func(expanded int)
}

// WithLogger attaches a logger; every Solve emits one debug event.
func WithLogger(l zerolog.Logger) SolverOption {
	return func(c *solverConfig) { c.logger = l }
}

// WithMaxExpansions bounds every run; 0 means unbounded.
func WithMaxExpansions(n int) SolverOption {
	return func(c *solverConfig) { c.maxExpansions = n }
}

// WithMissingEdgePolicy selects the greedy cost-replay policy.
func WithMissingEdgePolicy(p core.MissingEdgePolicy) SolverOption {
	return func(c *solverConfig) { c.missingEdge = p }
}

// WithOnExpand registers a hook receiving the running expansion count.
func WithOnExpand(fn func(expanded int)) SolverOption {
	return func(c *solverConfig) { c.onExpand = fn }
}

// strategy is one resolved search entry point.
type strategy[S comparable] func(ctx context.Context, start, goal S) (core.Result[S], error)

// Solver runs one Algorithm over one graph. The strategy is resolved once in
// NewSolver; Solve only calls it. A Solver holds no per-run state and may be
// used from several goroutines if the graph and heuristic allow it.
type Solver[S comparable] struct {
	algo   Algorithm
	run    strategy[S]
	logger zerolog.Logger
}

// NewSolver binds algo to g and h. h is required for Greedy and AStar and
// ignored otherwise.
func NewSolver[S comparable](g core.Graph[S], algo Algorithm, h heuristic.Heuristic[S], opts ...SolverOption) (*Solver[S], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	cfg := solverConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxExpansions < 0 {
		return nil, fmt.Errorf("search: MaxExpansions cannot be negative (%d)", cfg.maxExpansions)
	}
	if algo.Informed() && h == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeuristic, algo)
	}

	run, err := resolve(g, algo, h, cfg)
	if err != nil {
		return nil, err
	}

	return &Solver[S]{algo: algo, run: run, logger: cfg.logger}, nil
}

// Algorithm returns the bound algorithm.
func (s *Solver[S]) Algorithm() Algorithm { return s.algo }

// Solve searches start→goal and times the call. An unreachable goal is a
// Report with Found() == false and a nil error.
func (s *Solver[S]) Solve(ctx context.Context, start, goal S) (Report[S], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	began := time.Now()
	res, err := s.run(ctx, start, goal)
	rep := Report[S]{Result: res, Algorithm: s.algo, Duration: time.Since(began)}

	if limitReached(err) {
		err = fmt.Errorf("%w: %w", ErrExpansionLimit, err)
	}

	s.logger.Debug().
		Str("algorithm", s.algo.String()).
		Bool("found", rep.Found()).
		Int("steps", rep.Steps()).
		Float64("cost", rep.Cost).
		Int("expanded", rep.Expanded).
		Dur("duration", rep.Duration).
		Err(err).
		Msg("search finished")

	return rep, err
}

func limitReached(err error) bool {
	return errors.Is(err, bestfirst.ErrExpansionLimit) ||
		errors.Is(err, bfs.ErrExpansionLimit) ||
		errors.Is(err, dfs.ErrExpansionLimit)
}

// resolve maps algo to its statically typed entry point with the options
// already applied.
func resolve[S comparable](g core.Graph[S], algo Algorithm, h heuristic.Heuristic[S], cfg solverConfig) (strategy[S], error) {
	switch algo {
	case BFS:
		return func(ctx context.Context, start, goal S) (core.Result[S], error) {
			opts := []bfs.Option{bfs.WithContext(ctx), bfs.WithMaxExpansions(cfg.maxExpansions)}
			if cfg.onExpand != nil {
				opts = append(opts, bfs.WithOnExpand(func(n, _ int) { cfg.onExpand(n) }))
			}
			return bfs.BFS(g, start, goal, opts...)
		}, nil

	case DFS:
		return func(ctx context.Context, start, goal S) (core.Result[S], error) {
			opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxExpansions(cfg.maxExpansions)}
			if cfg.onExpand != nil {
				opts = append(opts, dfs.WithOnExpand(func(n, _ int) { cfg.onExpand(n) }))
			}
			return dfs.DFS(g, start, goal, opts...)
		}, nil

	case UniformCost:
		return func(ctx context.Context, start, goal S) (core.Result[S], error) {
			return bestfirst.UniformCost(g, start, goal, engineOptions(ctx, cfg)...)
		}, nil

	case Greedy:
		return func(ctx context.Context, start, goal S) (core.Result[S], error) {
			return bestfirst.GreedyBestFirst(g, start, goal, h, engineOptions(ctx, cfg)...)
		}, nil

	case AStar:
		return func(ctx context.Context, start, goal S) (core.Result[S], error) {
			return bestfirst.AStar(g, start, goal, h, engineOptions(ctx, cfg)...)
		}, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

func engineOptions(ctx context.Context, cfg solverConfig) []bestfirst.Option {
	opts := []bestfirst.Option{
		bestfirst.WithContext(ctx),
		bestfirst.WithMaxExpansions(cfg.maxExpansions),
		bestfirst.WithMissingEdgePolicy(cfg.missingEdge),
	}
	if cfg.onExpand != nil {
		opts = append(opts, bestfirst.WithOnExpand(func(n int, _ float64) { cfg.onExpand(n) }))
	}

	return opts
}
