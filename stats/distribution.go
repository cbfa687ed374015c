package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadConfidence is returned for confidence levels outside (0, 1).
	ErrBadConfidence = errors.New("stats: confidence level outside (0, 1)")
	// ErrNoResamples is returned when a confidence interval is requested
	// on an empty bootstrap distribution.
	ErrNoResamples = errors.New("stats: empty bootstrap distribution")
)

// Distribution is the value of a statistic across many bootstrap resamples.
// It approximates the sampling variability of the statistic and is consumed
// only through percentile queries; order is irrelevant.
type Distribution []float64

// ConfidenceInterval returns the percentile bootstrap interval at the given
// confidence level. The interval is the widely used percentile method; it
// is slightly biased and does not guarantee that the point estimate falls
// inside the bounds. Downstream comparison thresholds are calibrated
// against exactly this method, so it is kept as is.
func (d Distribution) ConfidenceInterval(confidenceLevel float64) (lower, upper float64, err error) {
	if !(confidenceLevel > 0 && confidenceLevel < 1) {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadConfidence, confidenceLevel)
	}
	if len(d) == 0 {
		return 0, 0, ErrNoResamples
	}
	p := Percentiles(sortedCopy(d))
	return p.At(50 * (1 - confidenceLevel)), p.At(50 * (1 + confidenceLevel)), nil
}

// PValue estimates the likelihood of seeing t or a more extreme value in
// the distribution. tails is 1 or 2.
func (d Distribution) PValue(t float64, tails int) float64 {
	if len(d) == 0 {
		return math.NaN()
	}
	hits := 0
	for _, x := range d {
		if x < t {
			hits++
		}
	}
	n := len(d)
	if n-hits < hits {
		hits = n - hits
	}
	return float64(hits) / float64(n) * float64(tails)
}

// StdDev returns the standard deviation of the distribution, which serves
// as the standard error of the estimated statistic.
func (d Distribution) StdDev() float64 {
	if len(d) < 2 {
		return 0
	}
	var sum float64
	for _, x := range d {
		sum += x
	}
	mean := sum / float64(len(d))
	var sq float64
	for _, x := range d {
		diff := x - mean
		sq += diff * diff
	}
	return math.Sqrt(sq / float64(len(d)-1))
}

// Percentiles returns a sorted view of the distribution.
func (d Distribution) Percentiles() Percentiles {
	return Percentiles(sortedCopy(d))
}
