package benchkit

import (
	"fmt"
	"math"

	"github.com/TomTonic/benchkit/stats"
)

// Change is the outcome of a regression check.
type Change int

const (
	// NoChange means the difference is not statistically significant or
	// falls within the noise threshold.
	NoChange Change = iota
	// Improved means the per-iteration cost dropped beyond the noise
	// threshold.
	Improved
	// Regressed means the per-iteration cost grew beyond the noise
	// threshold.
	Regressed
)

func (c Change) String() string {
	switch c {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "no change"
	}
}

// Comparison is the two-sample analysis of a current run against a stored
// baseline.
type Comparison struct {
	// TStatistic is Welch's t for current vs. baseline.
	TStatistic float64
	// TDistribution is the t-statistic's sampling distribution under the
	// null hypothesis, built by a mixed bootstrap of the pooled samples.
	// Non-finite replicates (possible for tiny samples) are dropped.
	TDistribution stats.Distribution
	// PValue is the bootstrap estimate of the likelihood of seeing a t
	// at least as extreme under the null hypothesis.
	PValue float64
	// AnalyticPValue is the classic Welch-Satterthwaite p-value, kept
	// alongside the bootstrap estimate as corroboration.
	AnalyticPValue float64
	// MeanChange and MedianChange estimate the relative change of the
	// statistic, e.g. +0.05 for 5% slower than baseline.
	MeanChange   Estimate
	MedianChange Estimate
}

// Compare runs the regression check of current against baseline: Welch's
// t-statistic with a mixed-bootstrap null distribution, plus bootstrapped
// estimates of the relative change in mean and median.
func Compare(current, baseline *stats.Sample, cfg Config) (*Comparison, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := stats.WelchT(current, baseline)
	tDist := stats.BootstrapMixedSeeded(current, baseline, cfg.Resamples, cfg.Seed, stats.WelchT)[0]
	tDist = dropNonFinite(tDist)

	relMean := func(a, b *stats.Sample) float64 { return a.Mean()/b.Mean() - 1 }
	relMedian := func(a, b *stats.Sample) float64 { return a.Median()/b.Median() - 1 }
	changeDists := stats.BootstrapTwoSampleSeeded(current, baseline, cfg.Resamples, cfg.Seed, relMean, relMedian)

	meanChange, err := newEstimate(relMean(current, baseline), changeDists[0], cfg.ConfidenceLevel)
	if err != nil {
		return nil, fmt.Errorf("benchkit: compare: %w", err)
	}
	medianChange, err := newEstimate(relMedian(current, baseline), changeDists[1], cfg.ConfidenceLevel)
	if err != nil {
		return nil, fmt.Errorf("benchkit: compare: %w", err)
	}

	return &Comparison{
		TStatistic:     t,
		TDistribution:  tDist,
		PValue:         tDist.PValue(t, 2),
		AnalyticPValue: stats.WelchPValue(current, baseline),
		MeanChange:     meanChange,
		MedianChange:   medianChange,
	}, nil
}

// Classify applies the noise-threshold policy to the comparison: the
// change must be statistically significant and its whole confidence
// interval must clear the threshold. Reporting layers with their own
// policy can ignore this and read the estimates directly.
func (c *Comparison) Classify(noiseThreshold, significanceLevel float64) Change {
	if c.PValue >= significanceLevel {
		return NoChange
	}
	ci := c.MeanChange
	switch {
	case ci.LowerBound > noiseThreshold:
		return Regressed
	case ci.UpperBound < -noiseThreshold:
		return Improved
	default:
		return NoChange
	}
}

func dropNonFinite(d stats.Distribution) stats.Distribution {
	kept := d[:0]
	for _, x := range d {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			kept = append(kept, x)
		}
	}
	return kept
}
