package benchkit

import (
	"fmt"

	"github.com/TomTonic/benchkit/stats"
)

// Report is the analysis result of one benchmark, handed to whatever
// reporting layer consumes the harness.
type Report struct {
	ID          BenchmarkID
	Measurement *Measurement
	// AvgTimes is the per-iteration cost sample the estimates are
	// computed from, in nanoseconds.
	AvgTimes  *stats.Sample
	Outliers  stats.OutlierReport
	Estimates Estimates
	// RSquared is the goodness of fit of the through-origin regression;
	// only meaningful when Estimates.Slope is set.
	RSquared float64
	// Comparison is set when a baseline sample existed for the ID.
	Comparison *Comparison
}

// Analyze turns the raw measurement into estimates: it derives the
// per-iteration cost sample, classifies outliers, bootstraps confidence
// intervals for mean, median, median absolute deviation and standard
// deviation, and, for linear sampling, fits the through-origin regression
// and bootstraps the slope.
func Analyze(id BenchmarkID, m *Measurement, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	avgTimes, err := m.AvgTimes()
	if err != nil {
		return nil, fmt.Errorf("benchkit: %s: %w", id, err)
	}

	report := &Report{
		ID:          id,
		Measurement: m,
		AvgTimes:    avgTimes,
		Outliers:    stats.ClassifyOutliers(avgTimes).Count(),
	}

	estimators := []stats.Estimator{
		(*stats.Sample).Mean,
		(*stats.Sample).Median,
		(*stats.Sample).MedianAbsDev,
		(*stats.Sample).StdDev,
	}
	dists := stats.BootstrapSeeded(avgTimes, cfg.Resamples, cfg.Seed, estimators...)

	points := [4]float64{avgTimes.Mean(), avgTimes.Median(), avgTimes.MedianAbsDev(), avgTimes.StdDev()}
	var estimates [4]Estimate
	for i := range estimates {
		estimates[i], err = newEstimate(points[i], dists[i], cfg.ConfidenceLevel)
		if err != nil {
			return nil, fmt.Errorf("benchkit: %s: %w", id, err)
		}
	}
	report.Estimates = Estimates{
		Mean:         estimates[0],
		Median:       estimates[1],
		MedianAbsDev: estimates[2],
		StdDev:       estimates[3],
	}

	if m.Mode == LinearSampling {
		slope, rsq, err := regress(m, cfg)
		if err != nil {
			return nil, fmt.Errorf("benchkit: %s: %w", id, err)
		}
		report.Estimates.Slope = slope
		report.RSquared = rsq
	}
	return report, nil
}

// regress fits the through-origin line to the (iterations, elapsed) pairs
// and bootstraps a confidence interval on the slope by refitting across
// paired resamples.
func regress(m *Measurement, cfg Config) (*Estimate, float64, error) {
	data, err := m.Data()
	if err != nil {
		return nil, 0, err
	}
	point := stats.FitThroughOrigin(data)

	fit := func(d *stats.Data) float64 {
		return float64(stats.FitThroughOrigin(d))
	}
	dist := stats.BootstrapDataSeeded(data, cfg.Resamples, cfg.Seed, fit)[0]

	estimate, err := newEstimate(float64(point), dist, cfg.ConfidenceLevel)
	if err != nil {
		return nil, 0, err
	}
	return &estimate, point.RSquared(data), nil
}
