package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func mustSample(t *testing.T, xs []float64) *Sample {
	t.Helper()
	s, err := NewSample(xs)
	require.NoError(t, err)
	return s
}

func TestNewSampleEmpty(t *testing.T) {
	_, err := NewSample(nil)
	assert.ErrorIs(t, err, ErrEmptySample)
	_, err = NewSample([]float64{})
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestNewSampleNaN(t *testing.T) {
	_, err := NewSample([]float64{1, math.NaN(), 3})
	assert.ErrorIs(t, err, ErrNaNSample)
}

func TestNewSampleCopies(t *testing.T) {
	xs := []float64{1, 2, 3}
	s := mustSample(t, xs)
	xs[0] = 99
	assert.Equal(t, 1.0, s.Min(), "sample must not alias the caller's slice")
}

func TestSampleEstimators(t *testing.T) {
	testCases := []struct {
		name   string
		data   []float64
		mean   float64
		median float64
	}{
		{"single", []float64{5}, 5, 5},
		{"odd", []float64{1, 2, 3}, 2, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5, 2.5},
		{"unsorted", []float64{3, 1, 2}, 2, 2},
		{"constant", []float64{7, 7, 7, 7}, 7, 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSample(t, tc.data)
			assert.InDelta(t, tc.mean, s.Mean(), 1e-12)
			assert.InDelta(t, tc.median, s.Median(), 1e-12)
		})
	}
}

// Cross-check mean, variance and standard deviation against gonum.
func TestSampleMatchesGonum(t *testing.T) {
	xs := []float64{3, 53, 512, 11, 75, 201, 335, 0.5, 42.42}
	s := mustSample(t, xs)

	assert.InDelta(t, stat.Mean(xs, nil), s.Mean(), 1e-9)
	assert.InDelta(t, stat.Variance(xs, nil), s.Variance(), 1e-9)
	assert.InDelta(t, stat.StdDev(xs, nil), s.StdDev(), 1e-9)
}

func TestSingleObservationVariance(t *testing.T) {
	s := mustSample(t, []float64{42})
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdDev())
}

func TestMedianAbsDev(t *testing.T) {
	// median = 3, |x - 3| = [2, 1, 0, 1, 2], MAD = 1 * 1.4826
	s := mustSample(t, []float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 1.4826, s.MedianAbsDev(), 1e-12)

	constant := mustSample(t, []float64{5, 5, 5})
	assert.Equal(t, 0.0, constant.MedianAbsDev())
}

func TestMinMaxSum(t *testing.T) {
	s := mustSample(t, []float64{4, -1, 7, 2})
	assert.Equal(t, -1.0, s.Min())
	assert.Equal(t, 7.0, s.Max())
	assert.Equal(t, 12.0, s.Sum())
	assert.Equal(t, 4, s.Len())
}

func TestValuesPreservesInsertionOrder(t *testing.T) {
	s := mustSample(t, []float64{3, 1, 2})
	// A percentile query sorts a cached view, not the sample itself.
	_ = s.Percentiles()
	assert.Equal(t, []float64{3, 1, 2}, s.Values())
}
