package primegen

import (
	"github.com/montanaflynn/stats"
)

// GapStats summarizes the gaps between consecutive entries of primes
// (which must already be sorted ascending), using montanaflynn/stats for
// the mean and standard deviation rather than hand-rolling the
// accumulation.
type GapStats struct {
	Mean   float64
	StdDev float64
	Max    float64
	Min    float64
}

// ComputeGapStats returns the gap statistics for primes. It returns an
// error if primes has fewer than two entries, mirroring stats' own
// empty-input error behavior.
func ComputeGapStats(primes []uint64) (GapStats, error) {
	if len(primes) < 2 {
		return GapStats{}, stats.EmptyInputErr
	}

	gaps := make(stats.Float64Data, 0, len(primes)-1)
	for i := 1; i < len(primes); i++ {
		gaps = append(gaps, float64(primes[i]-primes[i-1]))
	}

	mean, err := gaps.Mean()
	if err != nil {
		return GapStats{}, err
	}
	stddev, err := gaps.StandardDeviation()
	if err != nil {
		return GapStats{}, err
	}
	max, err := gaps.Max()
	if err != nil {
		return GapStats{}, err
	}
	min, err := gaps.Min()
	if err != nil {
		return GapStats{}, err
	}

	return GapStats{Mean: mean, StdDev: stddev, Max: max, Min: min}, nil
}
