package stats

import "math"

// KDE is a univariate Gaussian kernel density estimator over a sample,
// intended for visualizing the shape of a timing distribution.
type KDE struct {
	sample    *Sample
	bandwidth float64
}

// NewKDE builds an estimator for s with the bandwidth chosen by Silverman's
// rule of thumb, h = sigma * (4/(3n))^(1/5). A constant sample has zero
// standard deviation; the bandwidth then falls back to 1 so the density
// never divides by zero and degenerates to a unit-width kernel centered on
// the constant value.
func NewKDE(s *Sample) *KDE {
	sigma := s.StdDev()
	n := float64(s.Len())
	h := sigma * math.Pow(4.0/(3.0*n), 0.2)
	if h == 0 {
		h = 1
	}
	return &KDE{sample: s, bandwidth: h}
}

// Bandwidth returns the bandwidth used by the estimator.
func (k *KDE) Bandwidth() float64 {
	return k.bandwidth
}

// Estimate returns the probability density at x.
func (k *KDE) Estimate(x float64) float64 {
	h := k.bandwidth
	n := float64(k.sample.Len())
	var sum float64
	for _, xi := range k.sample.xs {
		sum += gaussian((x - xi) / h)
	}
	return sum / (h * n)
}

// Sweep evaluates the density at points evenly spaced positions across
// [min - 3h, max + 3h], the range that contains essentially all the mass.
// It returns the positions and the densities. Sweep panics if points < 2.
func (k *KDE) Sweep(points int) (xs, ys []float64) {
	if points < 2 {
		panic("stats: KDE sweep needs at least 2 points")
	}
	h := k.bandwidth
	lo := k.sample.Min() - 3*h
	hi := k.sample.Max() + 3*h
	step := (hi - lo) / float64(points-1)

	xs = make([]float64, points)
	ys = make([]float64, points)
	for i := range xs {
		x := lo + float64(i)*step
		xs[i] = x
		ys[i] = k.Estimate(x)
	}
	return xs, ys
}

func gaussian(u float64) float64 {
	return math.Exp(-u*u/2) / math.Sqrt(2*math.Pi)
}
