// Package bench: CSV export and per-column summaries.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Header is the CSV column order written by WriteCSV.
var Header = []string{"case", "algo", "heuristic", "ok", "steps", "cost", "expanded", "ms"}

// WriteCSV writes a header and one record per row. Steps and cost are empty
// for rows that did not solve.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		steps, cost := "", ""
		if r.OK {
			steps = strconv.Itoa(r.Steps)
			cost = strconv.FormatFloat(r.Cost, 'f', -1, 64)
		}
		rec := []string{
			strconv.Itoa(r.Case),
			r.Algorithm,
			r.Heuristic,
			strconv.FormatBool(r.OK),
			steps,
			cost,
			strconv.Itoa(r.Expanded),
			strconv.FormatFloat(r.Millis, 'f', 3, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// Summary aggregates one (algorithm, heuristic) column. Averages cover solved
// rows only and are 0 when none solved.
type Summary struct {
	Algorithm   string
	Heuristic   string
	Runs        int
	Solved      int
	AvgSteps    float64
	AvgMillis   float64
	AvgExpanded float64
}

// OKRate is the solved fraction in [0, 1].
func (s Summary) OKRate() float64 {
	if s.Runs == 0 {
		return 0
	}

	return float64(s.Solved) / float64(s.Runs)
}

// String formats the summary as one report line.
func (s Summary) String() string {
	return fmt.Sprintf("%s / %s: ok=%.1f%%  steps_avg=%.2f  ms_avg=%.1f  exp_avg=%.1f",
		s.Algorithm, s.Heuristic, s.OKRate()*100, s.AvgSteps, s.AvgMillis, s.AvgExpanded)
}

// Summarize groups rows by (algorithm, heuristic) in first-seen order.
func Summarize(rows []Row) []Summary {
	type key struct{ algo, h string }
	index := make(map[key]int)
	var out []Summary
	for _, r := range rows {
		k := key{r.Algorithm, r.Heuristic}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{Algorithm: r.Algorithm, Heuristic: r.Heuristic})
		}
		s := &out[i]
		s.Runs++
		if !r.OK {
			continue
		}
		s.Solved++
		s.AvgSteps += float64(r.Steps)
		s.AvgMillis += r.Millis
		s.AvgExpanded += float64(r.Expanded)
	}
	for i := range out {
		if n := float64(out[i].Solved); n > 0 {
			out[i].AvgSteps /= n
			out[i].AvgMillis /= n
			out[i].AvgExpanded /= n
		}
	}

	return out
}
