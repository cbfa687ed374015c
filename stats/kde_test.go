package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKDEBandwidthSilverman(t *testing.T) {
	s := mustSample(t, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	kde := NewKDE(s)
	want := s.StdDev() * math.Pow(4.0/(3.0*8.0), 0.2)
	assert.InDelta(t, want, kde.Bandwidth(), 1e-12)
}

func TestKDEConstantSampleBandwidth(t *testing.T) {
	s := mustSample(t, []float64{5, 5, 5})
	kde := NewKDE(s)
	assert.Equal(t, 1.0, kde.Bandwidth())
	assert.False(t, math.IsNaN(kde.Estimate(5)))
	assert.False(t, math.IsInf(kde.Estimate(5), 0))
}

// The estimated density must integrate to roughly one over the sweep
// range, which carries essentially all the mass.
func TestKDEIntegratesToOne(t *testing.T) {
	s := mustSample(t, []float64{1.2, 3.4, 2.2, 5.9, 4.4, 3.3, 2.8, 4.1})
	kde := NewKDE(s)

	const points = 2000
	xs, ys := kde.Sweep(points)
	var integral float64
	for i := 1; i < points; i++ {
		integral += (ys[i] + ys[i-1]) / 2 * (xs[i] - xs[i-1])
	}
	assert.InDelta(t, 1.0, integral, 0.01)
}

func TestKDESweepRange(t *testing.T) {
	s := mustSample(t, []float64{10, 20, 30})
	kde := NewKDE(s)
	xs, ys := kde.Sweep(100)
	assert.Len(t, xs, 100)
	assert.Len(t, ys, 100)
	h := kde.Bandwidth()
	assert.InDelta(t, 10-3*h, xs[0], 1e-9)
	assert.InDelta(t, 30+3*h, xs[99], 1e-9)
}

func TestKDESweepTooFewPointsPanics(t *testing.T) {
	kde := NewKDE(mustSample(t, []float64{1, 2}))
	assert.Panics(t, func() { kde.Sweep(1) })
}
