// Package bench: Run, the parallel sweep over random boards.

package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

// NoHeuristic labels rows of uninformed algorithms.
const NoHeuristic = "none"

// ProgressEvery is the number of completed cases between progress lines.
const ProgressEvery = 50

// Row is the outcome of one (case, algorithm, heuristic) search.
// Steps and Cost are meaningful only when OK.
type Row struct {
	Case      int
	Algorithm string
	Heuristic string
	OK        bool
	Steps     int
	Cost      float64
	Expanded  int
	Millis    float64
}

// Report is everything one Run produced. Seed reproduces the same boards.
type Report struct {
	Seed int64
	Rows []Row
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger for progress and per-search debug lines.
func WithLogger(l zerolog.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithMetrics records every search on m.
func WithMetrics(m *Metrics) Option {
	return func(r *runner) { r.metrics = m }
}

// pair is one (algorithm, heuristic) column of the sweep.
type pair struct {
	algo      string
	heuristic string
	solver    *search.Solver[puzzle.Board]
}

type runner struct {
	cfg     config.Bench
	logger  zerolog.Logger
	metrics *Metrics
	goal    puzzle.Board
	pairs   []pair
	done    atomic.Int64
}

// Run generates cfg.Count solvable boards and solves each with every
// configured algorithm, informed ones once per heuristic. Cases run in
// parallel on cfg.Workers goroutines; every case owns its random stream and
// writes only its own rows, so the Report is identical for a given seed
// whatever the worker count. A search stopped by cfg.MaxExpansions yields a
// row with OK false rather than an error.
func Run(ctx context.Context, cfg config.Bench, opts ...Option) (Report, error) {
	// 1) Validate and resolve solvers once.
	full := config.Default()
	full.Bench = cfg
	if err := full.Validate(); err != nil {
		return Report{}, err
	}
	r := &runner{cfg: cfg, logger: zerolog.Nop(), goal: puzzle.Goal(cfg.Size)}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.resolve(); err != nil {
		return Report{}, err
	}

	// 2) Fix the base seed.
	seed := cfg.Seed
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt64)) + 1
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	r.logger.Info().
		Int64("seed", seed).
		Int("cases", cfg.Count).
		Int("size", cfg.Size).
		Int("workers", workers).
		Int("columns", len(r.pairs)).
		Msg("benchmark started")

	// 3) Fan out cases; each writes its own slice window.
	rows := make([]Row, cfg.Count*len(r.pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Count; i++ {
		i := i
		g.Go(func() error {
			return r.runCase(gctx, i, seed, rows[i*len(r.pairs):(i+1)*len(r.pairs)])
		})
	}
	if err := g.Wait(); err != nil {
		return Report{Seed: seed}, err
	}

	return Report{Seed: seed, Rows: rows}, nil
}

func (r *runner) resolve() error {
	graph := puzzle.NewGraph()
	for _, name := range r.cfg.Algorithms {
		algo, err := search.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		opts := []search.SolverOption{
			search.WithMaxExpansions(r.cfg.MaxExpansions),
			search.WithLogger(r.logger),
		}
		if !algo.Informed() {
			s, err := search.NewSolver[puzzle.Board](graph, algo, nil, opts...)
			if err != nil {
				return err
			}
			r.pairs = append(r.pairs, pair{algo: algo.String(), heuristic: NoHeuristic, solver: s})
			continue
		}
		for _, hname := range r.cfg.Heuristics {
			canon, err := puzzle.CanonicalHeuristic(hname)
			if err != nil {
				return err
			}
			h, err := puzzle.NewHeuristic(canon, r.goal)
			if err != nil {
				return err
			}
			s, err := search.NewSolver[puzzle.Board](graph, algo, h, opts...)
			if err != nil {
				return err
			}
			r.pairs = append(r.pairs, pair{algo: algo.String(), heuristic: canon, solver: s})
		}
	}

	return nil
}

// runCase builds board i from its derived stream and fills out, one row per pair.
func (r *runner) runCase(ctx context.Context, i int, seed int64, out []Row) error {
	rng := puzzle.NewRand(puzzle.DeriveSeed(seed, uint64(i)))
	start := puzzle.Shuffle(r.cfg.Size, r.cfg.Shuffle, rng)
	if err := puzzle.RequireSolvable(start, r.goal); err != nil {
		return fmt.Errorf("bench: case %d: %w", i, err)
	}

	for j, p := range r.pairs {
		rep, err := p.solver.Solve(ctx, start, r.goal)
		outcome := OutcomeSolved
		switch {
		case errors.Is(err, search.ErrExpansionLimit):
			outcome = OutcomeLimit
		case err != nil:
			return fmt.Errorf("bench: case %d %s/%s: %w", i, p.algo, p.heuristic, err)
		case !rep.Found():
			outcome = OutcomeUnreachable
		}

		row := Row{
			Case:      i,
			Algorithm: p.algo,
			Heuristic: p.heuristic,
			OK:        outcome == OutcomeSolved,
			Expanded:  rep.Expanded,
			Millis:    float64(rep.Duration.Microseconds()) / 1000,
		}
		if row.OK {
			row.Steps, row.Cost = rep.Steps(), rep.Cost
		}
		out[j] = row
		r.metrics.observe(row, outcome)
	}

	if n := r.done.Add(1); n%ProgressEvery == 0 {
		r.logger.Info().Int64("done", n).Int("total", r.cfg.Count).Msg("cases completed")
	}

	return nil
}
