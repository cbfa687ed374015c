package stats

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentileEndpoints(t *testing.T) {
	s := mustSample(t, []float64{9, 1, 5, 3, 7})
	p := s.Percentiles()
	assert.Equal(t, s.Min(), p.At(0))
	assert.Equal(t, s.Max(), p.At(100))
}

func TestPercentileInterpolation(t *testing.T) {
	s := mustSample(t, []float64{1, 2, 3, 4})
	p := s.Percentiles()
	// rank = 0.5/100 * 3; between the 1st and 2nd order statistic.
	assert.InDelta(t, 2.5, p.At(50), 1e-12)
	assert.InDelta(t, 1.75, p.At(25), 1e-12)
	assert.InDelta(t, 3.25, p.At(75), 1e-12)
}

func TestPercentileSinglePoint(t *testing.T) {
	s := mustSample(t, []float64{42})
	p := s.Percentiles()
	for _, pct := range []float64{0, 25, 50, 75, 99.9, 100} {
		assert.Equal(t, 42.0, p.At(pct))
	}
}

func TestPercentileOutOfRangePanics(t *testing.T) {
	p := mustSample(t, []float64{1, 2}).Percentiles()
	assert.Panics(t, func() { p.At(-0.1) })
	assert.Panics(t, func() { p.At(100.1) })
}

// Percentile must be non-decreasing in p for any sample.
func TestPercentileMonotone(t *testing.T) {
	property := func(seed int64, size uint8) bool {
		n := int(size)%50 + 1
		rng := rand.New(rand.NewSource(seed))
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.NormFloat64() * 100
		}
		s, err := NewSample(xs)
		if err != nil {
			return false
		}
		p := s.Percentiles()
		prev := p.At(0)
		for pct := 1.0; pct <= 100; pct++ {
			cur := p.At(pct)
			if cur < prev {
				return false
			}
			prev = cur
		}
		return true
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestQuartileMonotonicity(t *testing.T) {
	property := func(seed int64, size uint8) bool {
		n := int(size)%40 + 1
		rng := rand.New(rand.NewSource(seed))
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.ExpFloat64()
		}
		s, err := NewSample(xs)
		if err != nil {
			return false
		}
		q1, q2, q3 := s.Percentiles().Quartiles()
		return q1 <= q2 && q2 <= q3
	}
	require.NoError(t, quick.Check(property, nil))
}

func TestIQR(t *testing.T) {
	s := mustSample(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100})
	p := s.Percentiles()
	assert.InDelta(t, 3.25, p.At(25), 1e-12)
	assert.InDelta(t, 7.75, p.At(75), 1e-12)
	assert.InDelta(t, 4.5, p.IQR(), 1e-12)
}
