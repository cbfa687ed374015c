package benchkit

import (
	"errors"
	"fmt"
	"time"
)

// SamplingMode selects how the measurement loop distributes iterations over
// the collected samples.
type SamplingMode int

const (
	// AutoSampling uses the linear ramp unless the routine is so
	// expensive that the ramp would blow the measurement-time budget, in
	// which case it falls back to flat sampling.
	AutoSampling SamplingMode = iota
	// LinearSampling ramps the iteration count linearly across samples
	// (d, 2d, ..., nd). The ramp is what makes the regression on
	// (iterations, elapsed) pairs meaningful.
	LinearSampling
	// FlatSampling runs the same iteration count for every sample.
	FlatSampling
)

func (m SamplingMode) String() string {
	switch m {
	case LinearSampling:
		return "linear"
	case FlatSampling:
		return "flat"
	default:
		return "auto"
	}
}

// ErrBadConfig is returned by Config.Validate for out-of-range settings.
var ErrBadConfig = errors.New("benchkit: invalid config")

// Config holds the measurement and analysis settings for one benchmark run.
type Config struct {
	// ConfidenceLevel for all bootstrap confidence intervals, in (0, 1).
	ConfidenceLevel float64
	// MeasurementTime is the wall-clock budget the sampling plan aims
	// for across all samples.
	MeasurementTime time.Duration
	// NoiseThreshold is the relative change below which a comparison is
	// reported as noise, e.g. 0.01 for 1%.
	NoiseThreshold float64
	// Resamples is the bootstrap resample count.
	Resamples int
	// SampleCount is the number of (iterations, elapsed) pairs to
	// collect.
	SampleCount int
	// SignificanceLevel is the p-value threshold for regression
	// detection.
	SignificanceLevel float64
	// WarmUpTime is spent running the routine before any measurement.
	WarmUpTime time.Duration
	// SamplingMode selects the iteration plan.
	SamplingMode SamplingMode
	// Seed is the root seed for bootstrap resampling. Zero draws a fresh
	// random stream per pass; fix it to reproduce an analysis.
	Seed uint64
}

// DefaultConfig returns the settings a run starts from.
func DefaultConfig() Config {
	return Config{
		ConfidenceLevel:   0.95,
		MeasurementTime:   5 * time.Second,
		NoiseThreshold:    0.01,
		Resamples:         100_000,
		SampleCount:       100,
		SignificanceLevel: 0.05,
		WarmUpTime:        3 * time.Second,
		SamplingMode:      AutoSampling,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case !(c.ConfidenceLevel > 0 && c.ConfidenceLevel < 1):
		return fmt.Errorf("%w: confidence level %v outside (0, 1)", ErrBadConfig, c.ConfidenceLevel)
	case c.MeasurementTime <= 0:
		return fmt.Errorf("%w: measurement time %v", ErrBadConfig, c.MeasurementTime)
	case c.WarmUpTime <= 0:
		return fmt.Errorf("%w: warm-up time %v", ErrBadConfig, c.WarmUpTime)
	case c.Resamples < 1:
		return fmt.Errorf("%w: resample count %d", ErrBadConfig, c.Resamples)
	case c.SampleCount < 10:
		return fmt.Errorf("%w: sample count %d below 10", ErrBadConfig, c.SampleCount)
	case c.NoiseThreshold < 0:
		return fmt.Errorf("%w: noise threshold %v", ErrBadConfig, c.NoiseThreshold)
	case !(c.SignificanceLevel > 0 && c.SignificanceLevel < 1):
		return fmt.Errorf("%w: significance level %v outside (0, 1)", ErrBadConfig, c.SignificanceLevel)
	}
	return nil
}
