package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch is returned when the X and Y sequences of a data
	// set differ in length.
	ErrLengthMismatch = errors.New("stats: x and y lengths differ")
	// ErrBadDataPoint is returned for observations outside the valid
	// domain: iteration counts below one or negative elapsed times.
	ErrBadDataPoint = errors.New("stats: data point outside valid domain")
)

// Data is a bivariate data set of (iteration count, elapsed time) pairs.
// Both sequences have the same length, every x is at least 1 and every y is
// non-negative. Like Sample, a Data is immutable once constructed.
type Data struct {
	xs []float64
	ys []float64
}

// NewData validates and copies the paired sequences into a Data.
func NewData(xs, ys []float64) (*Data, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, ErrEmptySample
	}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			return nil, fmt.Errorf("%w: index %d", ErrNaNSample, i)
		}
		if xs[i] < 1 || ys[i] < 0 {
			return nil, fmt.Errorf("%w: (%v, %v) at index %d", ErrBadDataPoint, xs[i], ys[i], i)
		}
	}
	cx := make([]float64, len(xs))
	cy := make([]float64, len(ys))
	copy(cx, xs)
	copy(cy, ys)
	return &Data{xs: cx, ys: cy}, nil
}

func newScratchData(xs, ys []float64) *Data {
	return &Data{xs: xs, ys: ys}
}

// Len returns the number of pairs.
func (d *Data) Len() int {
	return len(d.xs)
}

// X returns a copy of the iteration counts.
func (d *Data) X() []float64 {
	cp := make([]float64, len(d.xs))
	copy(cp, d.xs)
	return cp
}

// Y returns a copy of the elapsed times.
func (d *Data) Y() []float64 {
	cp := make([]float64, len(d.ys))
	copy(cp, d.ys)
	return cp
}

// Slope is a straight line through the origin, y = m*x. For benchmark data
// the slope is the cost per iteration.
type Slope float64

// FitThroughOrigin fits the data to a line through the origin by ordinary
// least squares, minimizing the sum of (y - m*x)^2. The closed form is
// m = sum(x*y) / sum(x*x).
func FitThroughOrigin(d *Data) Slope {
	return Slope(dot(d.xs, d.ys) / dot(d.xs, d.xs))
}

// RSquared reports the goodness of fit of the slope on d. All-equal y
// values make the total sum of squares zero; the fit is then defined as
// perfect rather than dividing by zero.
func (m Slope) RSquared(d *Data) float64 {
	var yBar float64
	for _, y := range d.ys {
		yBar += y
	}
	yBar /= float64(len(d.ys))

	var ssRes, ssTot float64
	for i, x := range d.xs {
		y := d.ys[i]
		res := y - float64(m)*x
		tot := y - yBar
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// Line is a general straight line, y = intercept + slope*x. The intercept
// absorbs constant per-sample overhead that would otherwise bias the
// through-origin slope.
type Line struct {
	Intercept float64
	Slope     float64
}

// FitLine fits the data to a general straight line by ordinary least
// squares. Degenerate data with all x equal yields a horizontal line
// through the mean.
func FitLine(d *Data) Line {
	n := float64(len(d.xs))
	var xBar, yBar float64
	for i := range d.xs {
		xBar += d.xs[i]
		yBar += d.ys[i]
	}
	xBar /= n
	yBar /= n

	var sxy, sxx float64
	for i := range d.xs {
		dx := d.xs[i] - xBar
		sxy += dx * (d.ys[i] - yBar)
		sxx += dx * dx
	}
	if sxx == 0 {
		return Line{Intercept: yBar, Slope: 0}
	}
	slope := sxy / sxx
	return Line{Intercept: yBar - slope*xBar, Slope: slope}
}

// RSquared reports the goodness of fit of the line on d, with the same
// zero-variance policy as Slope.RSquared.
func (l Line) RSquared(d *Data) float64 {
	var yBar float64
	for _, y := range d.ys {
		yBar += y
	}
	yBar /= float64(len(d.ys))

	var ssRes, ssTot float64
	for i, x := range d.xs {
		y := d.ys[i]
		res := y - (l.Intercept + l.Slope*x)
		tot := y - yBar
		ssRes += res * res
		ssTot += tot * tot
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

func dot(xs, ys []float64) float64 {
	var sum float64
	for i, x := range xs {
		sum += x * ys[i]
	}
	return sum
}
