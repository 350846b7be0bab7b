package telemetry

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// GenStats aggregates one generation of the vitality field for run output.
type GenStats struct {
	Generation int     `csv:"generation"`
	Mean       float64 `csv:"mean"`
	StdDev     float64 `csv:"stddev"`
	P10        float64 `csv:"p10"`
	P50        float64 `csv:"p50"`
	P90        float64 `csv:"p90"`

	// LiveCells counts cells at exactly 1; ActiveCells counts cells above 0.
	LiveCells   int `csv:"live"`
	ActiveCells int `csv:"active"`
}

// Collect computes summary statistics over a vitality field.
func Collect(generation int, field []float64) GenStats {
	s := GenStats{Generation: generation}
	if len(field) == 0 {
		return s
	}

	sorted := slices.Clone(field)
	slices.Sort(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if sd := stat.StdDev(sorted, nil); !math.IsNaN(sd) {
		s.StdDev = sd
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	for _, v := range field {
		if v == 1 {
			s.LiveCells++
		}
		if v > 0 {
			s.ActiveCells++
		}
	}
	return s
}
