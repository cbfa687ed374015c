package stats

import (
	"fmt"
	"math"
	"sort"
)

// Percentiles is a sorted view of a sample. Consecutive percentile queries
// on the view are O(1) after the one-time O(n log n) sort.
type Percentiles []float64

// Percentiles returns the sorted view of the sample. For regular samples
// the view is computed once and cached; scratch samples (resampler buffers)
// sort fresh on every call because their backing array is refilled.
func (s *Sample) Percentiles() Percentiles {
	if s.scratch {
		return sortedCopy(s.xs)
	}
	s.once.Do(func() {
		s.sorted = sortedCopy(s.xs)
	})
	return Percentiles(s.sorted)
}

func sortedCopy(xs []float64) []float64 {
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)
	return cp
}

// At returns the percentile at p%, for p in the closed range [0, 100],
// linearly interpolating between the two nearest order statistics.
// p == 100 returns the maximum directly so the ceiling index never runs
// past the end of the view.
//
// At panics if p is outside [0, 100] or the view is empty; both indicate a
// caller bug, not a data problem.
func (p Percentiles) At(pct float64) float64 {
	if pct < 0 || pct > 100 || math.IsNaN(pct) {
		panic(fmt.Sprintf("stats: percentile %v outside [0, 100]", pct))
	}
	if len(p) == 0 {
		panic("stats: percentile of empty view")
	}
	last := len(p) - 1
	if pct == 100 {
		return p[last]
	}
	rank := pct / 100 * float64(last)
	integer := math.Floor(rank)
	fraction := rank - integer
	n := int(integer)
	if n >= last {
		// Single-observation view, or rank landed on the last order
		// statistic; nothing to interpolate with.
		return p[last]
	}
	floor, ceiling := p[n], p[n+1]
	return floor + (ceiling-floor)*fraction
}

// Median returns the 50th percentile.
func (p Percentiles) Median() float64 {
	return p.At(50)
}

// Quartiles returns the 25th, 50th and 75th percentiles.
func (p Percentiles) Quartiles() (q1, q2, q3 float64) {
	return p.At(25), p.At(50), p.At(75)
}

// IQR returns the interquartile range.
func (p Percentiles) IQR() float64 {
	return p.At(75) - p.At(25)
}
