package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates a batch's records into per-group summary
// statistics. Pure aggregation: no I/O, the batch is read-only.
// Runtime, expansions, and peak frontier cover every run; path length
// and cost cover successful runs only.
func Summarize(b *Batch, groupBy GroupBy) map[string]Summary {
	groups := make(map[string][]Record)
	for _, r := range b.Records {
		k := groupBy.key(r)
		groups[k] = append(groups[k], r)
	}

	out := make(map[string]Summary, len(groups))
	for k, recs := range groups {
		var (
			runtimes = make([]float64, 0, len(recs))
			expanded = make([]float64, 0, len(recs))
			peaks    = make([]float64, 0, len(recs))
			lengths  []float64
			costs    []float64
			hits     int
		)
		for _, r := range recs {
			runtimes = append(runtimes, r.Elapsed.Seconds()*1000)
			expanded = append(expanded, float64(r.Expanded))
			peaks = append(peaks, float64(r.PeakFrontier))
			if r.Success {
				hits++
				lengths = append(lengths, float64(len(r.Path)))
				costs = append(costs, r.Cost)
			}
		}
		out[k] = Summary{
			Count:        len(recs),
			SuccessRate:  float64(hits) / float64(len(recs)),
			RuntimeMS:    describe(runtimes),
			Expanded:     describe(expanded),
			PeakFrontier: describe(peaks),
			PathLength:   describe(lengths),
			PathCost:     describe(costs),
		}
	}
	return out
}

// describe computes the five summary statistics over xs.
// An empty sample yields zero Stats.
func describe(xs []float64) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	return Stats{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: stdDev(sorted),
	}
}

// stdDev guards the single-sample case, where the unbiased estimator
// divides by zero.
func stdDev(sorted []float64) float64 {
	if len(sorted) < 2 {
		return 0
	}
	return stat.StdDev(sorted, nil)
}

// WriteCSV exports the batch's records in a flat tabular form for the
// external reporting layer. One row per (map, planner, discipline,
// motion) run.
func WriteCSV(w io.Writer, b *Batch) error {
	cw := csv.NewWriter(w)
	header := []string{
		"map_id", "size", "ratio", "trial", "start", "goal",
		"planner", "discipline", "motion",
		"success", "outcome", "path_len", "path_cost",
		"expanded", "peak_frontier", "runtime_ms",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range b.Records {
		row := []string{
			r.MapID,
			r.Size.String(),
			strconv.FormatFloat(r.Ratio, 'f', -1, 64),
			strconv.Itoa(r.Trial),
			r.Start.String(),
			r.Goal.String(),
			r.Algorithm.String(),
			r.Discipline.String(),
			r.Conn.String(),
			strconv.FormatBool(r.Success),
			r.Outcome.String(),
			strconv.Itoa(len(r.Path)),
			fmt.Sprintf("%.4f", r.Cost),
			strconv.Itoa(r.Expanded),
			strconv.Itoa(r.PeakFrontier),
			fmt.Sprintf("%.4f", r.Elapsed.Seconds()*1000),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
