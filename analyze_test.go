package benchkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearMeasurement builds a synthetic perfectly linear measurement with
// cost ns per iteration over sampleCount ramp steps.
func linearMeasurement(cost float64, sampleCount int) *Measurement {
	iters := make([]float64, sampleCount)
	elapsed := make([]float64, sampleCount)
	for i := range iters {
		iters[i] = float64(i+1) * 10
		elapsed[i] = iters[i] * cost
	}
	return &Measurement{Iters: iters, Elapsed: elapsed, Mode: LinearSampling}
}

func TestAnalyzeLinearMeasurement(t *testing.T) {
	id := BenchmarkID{Group: "synthetic"}
	m := linearMeasurement(2.0, 10)

	report, err := Analyze(id, m, testConfig())
	require.NoError(t, err)

	assert.Equal(t, id, report.ID)
	assert.Same(t, m, report.Measurement)

	// All per-iteration costs are exactly 2 ns; every resample agrees.
	assert.Equal(t, 2.0, report.Estimates.Mean.Point)
	assert.Equal(t, 2.0, report.Estimates.Mean.LowerBound)
	assert.Equal(t, 2.0, report.Estimates.Mean.UpperBound)
	assert.Equal(t, 2.0, report.Estimates.Median.Point)
	assert.Equal(t, 0.0, report.Estimates.StdDev.Point)
	assert.Equal(t, 0, report.Outliers.Total())

	require.NotNil(t, report.Estimates.Slope)
	assert.Equal(t, 2.0, report.Estimates.Slope.Point)
	assert.Equal(t, 1.0, report.RSquared)
	assert.Equal(t, 2.0, report.Estimates.Typical().Point, "linear mode leads with the slope")
}

func TestAnalyzeFlatMeasurementHasNoSlope(t *testing.T) {
	m := &Measurement{
		Iters:   []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
		Elapsed: []float64{50, 52, 49, 51, 50, 48, 50, 53, 49, 50},
		Mode:    FlatSampling,
	}
	report, err := Analyze(BenchmarkID{Group: "flat"}, m, testConfig())
	require.NoError(t, err)

	assert.Nil(t, report.Estimates.Slope)
	assert.Equal(t, report.Estimates.Mean, report.Estimates.Typical(), "flat mode falls back to the mean")
	assert.InDelta(t, 10.04, report.Estimates.Mean.Point, 1e-9)
}

func TestAnalyzeDetectsOutliers(t *testing.T) {
	iters := make([]float64, 10)
	elapsed := make([]float64, 10)
	for i := range iters {
		iters[i] = 1
		elapsed[i] = float64(i + 1)
	}
	elapsed[9] = 100
	m := &Measurement{Iters: iters, Elapsed: elapsed, Mode: FlatSampling}

	report, err := Analyze(BenchmarkID{Group: "outliers"}, m, testConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Outliers.HighSevere)
	assert.Equal(t, 1, report.Outliers.Total())
	assert.Equal(t, 10, report.Outliers.SampleSize)
}

func TestAnalyzeSeededRunsAgree(t *testing.T) {
	m := &Measurement{
		Iters:   []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		Elapsed: []float64{9, 11, 10, 12, 8, 10, 11, 9, 10, 10},
		Mode:    FlatSampling,
	}
	cfg := testConfig()
	cfg.Seed = 7

	a, err := Analyze(BenchmarkID{Group: "seeded"}, m, cfg)
	require.NoError(t, err)
	b, err := Analyze(BenchmarkID{Group: "seeded"}, m, cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Estimates, b.Estimates)
}

func TestAnalyzeRejectsBadMeasurement(t *testing.T) {
	m := &Measurement{
		Iters:   []float64{1, 1},
		Elapsed: []float64{1, math.NaN()},
		Mode:    FlatSampling,
	}
	_, err := Analyze(BenchmarkID{Group: "bad"}, m, testConfig())
	assert.Error(t, err)
}
