package benchkit

import "github.com/TomTonic/benchkit/stats"

// Estimate is a point value for one statistic plus its bootstrapped
// uncertainty: the standard error and a percentile confidence interval at
// the stated level. The percentile method does not guarantee that the
// point estimate falls between the bounds; that known bias is preserved
// because the comparison thresholds are calibrated against it.
type Estimate struct {
	Point           float64
	StandardError   float64
	LowerBound      float64
	UpperBound      float64
	ConfidenceLevel float64
}

// Estimates collects the bootstrapped estimates of the per-iteration cost
// sample. Slope is only present for linear sampling, where the iteration
// ramp makes the regression meaningful.
type Estimates struct {
	Mean         Estimate
	Median       Estimate
	MedianAbsDev Estimate
	StdDev       Estimate
	Slope        *Estimate
}

// Typical returns the estimate reports should lead with: the slope when
// the regression ran, otherwise the mean.
func (e *Estimates) Typical() Estimate {
	if e.Slope != nil {
		return *e.Slope
	}
	return e.Mean
}

func newEstimate(point float64, dist stats.Distribution, confidenceLevel float64) (Estimate, error) {
	lower, upper, err := dist.ConfidenceInterval(confidenceLevel)
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{
		Point:           point,
		StandardError:   dist.StdDev(),
		LowerBound:      lower,
		UpperBound:      upper,
		ConfidenceLevel: confidenceLevel,
	}, nil
}
