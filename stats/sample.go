package stats

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrEmptySample is returned when a sample with no observations is
	// handed to a constructor or estimator that needs at least one.
	ErrEmptySample = errors.New("stats: empty sample")
	// ErrNaNSample is returned when an observation is NaN.
	ErrNaNSample = errors.New("stats: sample contains NaN")
)

// Sample is an immutable ordered collection of observations drawn from one
// population, e.g. per-iteration runtimes in nanoseconds. The insertion
// order is preserved; percentile queries go through a sorted view that is
// computed once and cached, never mutating the sample itself.
type Sample struct {
	xs []float64

	// scratch samples wrap a resampler's reusable buffer; they skip the
	// sorted-view cache because the buffer is refilled between draws.
	scratch bool

	once   sync.Once
	sorted []float64
}

// NewSample validates and copies xs into a Sample. The slice must be
// non-empty and free of NaNs.
func NewSample(xs []float64) (*Sample, error) {
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	for i, x := range xs {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("%w: index %d", ErrNaNSample, i)
		}
	}
	cp := make([]float64, len(xs))
	copy(cp, xs)
	return &Sample{xs: cp}, nil
}

// newScratchSample wraps xs without copying or validating. The resampler
// uses it to expose its reusable buffer; callers must not retain the view
// beyond the next refill.
func newScratchSample(xs []float64) *Sample {
	return &Sample{xs: xs, scratch: true}
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.xs)
}

// Values returns a copy of the observations in insertion order.
func (s *Sample) Values() []float64 {
	cp := make([]float64, len(s.xs))
	copy(cp, s.xs)
	return cp
}

// Sum returns the sum of all observations.
func (s *Sample) Sum() float64 {
	var sum float64
	for _, x := range s.xs {
		sum += x
	}
	return sum
}

// Mean returns the arithmetic average.
func (s *Sample) Mean() float64 {
	return s.Sum() / float64(len(s.xs))
}

// Min returns the smallest observation.
func (s *Sample) Min() float64 {
	min := s.xs[0]
	for _, x := range s.xs[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

// Max returns the largest observation.
func (s *Sample) Max() float64 {
	max := s.xs[0]
	for _, x := range s.xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// Variance returns the unbiased sample variance (n-1 denominator).
// A single-observation sample has variance 0.
func (s *Sample) Variance() float64 {
	return s.varWithMean(s.Mean())
}

func (s *Sample) varWithMean(mean float64) float64 {
	if len(s.xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range s.xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(s.xs)-1)
}

// StdDev returns the sample standard deviation.
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Median returns the 50th percentile of the sample.
func (s *Sample) Median() float64 {
	return s.Percentiles().Median()
}

// MedianAbsDev returns the median absolute deviation, scaled by 1.4826 so
// it estimates the standard deviation for normally distributed data.
func (s *Sample) MedianAbsDev() float64 {
	median := s.Median()
	absDevs := make([]float64, len(s.xs))
	for i, x := range s.xs {
		absDevs[i] = math.Abs(x - median)
	}
	devs := newScratchSample(absDevs)
	return devs.Median() * 1.4826
}
