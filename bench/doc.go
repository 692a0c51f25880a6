// Package bench sweeps random sliding-puzzle instances across algorithms and
// heuristics.
//
// Run draws cfg.Count boards by shuffling the goal (so every board is
// solvable), then solves each board with every algorithm in cfg.Algorithms;
// informed algorithms run once per heuristic in cfg.Heuristics. Boards are
// independent units of work and are spread over an errgroup bounded by
// cfg.Workers. Each board's random stream is derived from the base seed and
// the case index, so a Report is reproducible from its Seed.
//
// cfg.MaxExpansions caps every search; greedy search with a weak heuristic
// can otherwise wander for a long time on larger boards. A capped search is
// reported as a failed row.
//
// WriteCSV exports rows, Summarize aggregates them per (algorithm, heuristic)
// and Metrics exposes the same figures to Prometheus.
package bench
