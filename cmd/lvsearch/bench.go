package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/bench"
	"github.com/katalvlaran/lvsearch/config"
)

func newBenchCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "bench [options]",
		Short:     "benchmark algorithms and heuristics on random sliding puzzles",
		Long: `
Shuffles the goal board -count times, solves every board with each configured
algorithm and heuristic, writes one CSV row per search and prints a summary
per (algorithm, heuristic). Flags override the bench section of the settings.

	$ lvsearch bench -count 200 -out out/results.csv -metrics out/bench.prom
`,
		Flag: *flag.NewFlagSet("bench", flag.ExitOnError),
	}
	c := addCommonFlags(&cmd.Flag)
	size := cmd.Flag.Int("size", 0, "board side length")
	count := cmd.Flag.Int("count", 0, "number of random boards")
	shuffle := cmd.Flag.Int("shuffle", 0, "random moves per board")
	seed := cmd.Flag.Int64("seed", 0, "base seed, 0 for random")
	workers := cmd.Flag.Int("workers", 0, "parallel boards, 0 for every CPU")
	out := cmd.Flag.String("out", "", "CSV output path")
	metricsOut := cmd.Flag.String("metrics", "", "write Prometheus metrics in text format to this path")

	cmd.Run = func(cmd *commander.Command, _ []string) error {
		cfg, logger, err := c.setup()
		if err != nil {
			return err
		}
		b := cfg.Bench
		if flagGiven(cmd, "size") {
			b.Size = *size
		}
		if flagGiven(cmd, "count") {
			b.Count = *count
		}
		if flagGiven(cmd, "shuffle") {
			b.Shuffle = *shuffle
		}
		if flagGiven(cmd, "seed") {
			b.Seed = *seed
		}
		if flagGiven(cmd, "workers") {
			b.Workers = *workers
		}
		if flagGiven(cmd, "out") {
			b.Out = *out
		}
		return runBench(context.Background(), b, *metricsOut, logger)
	}

	return cmd
}

func runBench(ctx context.Context, b config.Bench, metricsOut string, logger zerolog.Logger) error {
	reg := prometheus.NewRegistry()
	m, err := bench.NewMetrics(reg)
	if err != nil {
		return err
	}

	rep, err := bench.Run(ctx, b, bench.WithLogger(logger), bench.WithMetrics(m))
	if err != nil {
		return err
	}

	if b.Out != "" {
		if err = writeCSVFile(b.Out, rep.Rows); err != nil {
			return err
		}
		logger.Info().Str("path", b.Out).Int("rows", len(rep.Rows)).Msg("results written")
	}
	if metricsOut != "" {
		if err = prometheus.WriteToTextfile(metricsOut, reg); err != nil {
			return fmt.Errorf("bench: write metrics: %w", err)
		}
	}

	fmt.Fprintf(stdout, "=== Summary (seed %d) ===\n", rep.Seed)
	for _, s := range bench.Summarize(rep.Rows) {
		fmt.Fprintln(stdout, s)
	}

	return nil
}

func writeCSVFile(path string, rows []bench.Row) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = bench.WriteCSV(f, rows); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
