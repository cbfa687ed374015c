package benchkit

import "math"

// samplingPlan is the resolved iteration schedule for one measurement.
type samplingPlan struct {
	mode       SamplingMode // LinearSampling or FlatSampling, never auto
	iters      []uint64
	expectedNS float64
}

// planSamples turns the configured mode, sample count and time budget into
// concrete iteration counts, using the mean execution time met (ns per
// iteration) estimated during warm-up.
//
// Linear mode ramps the counts as d, 2d, ..., nd where d solves
// (1+2+...+n)*d*met = budget, so the projected total wall-clock time over
// all samples matches the measurement time. Flat mode gives every sample
// the same count budget/met/n. Auto mode picks linear unless its projected
// duration overshoots the budget by more than 2x, which happens when even
// d = 1 is too expensive; it then falls back to flat, avoiding fractional
// iteration counts for expensive routines.
func planSamples(mode SamplingMode, sampleCount int, budgetNS, met float64) samplingPlan {
	n := uint64(sampleCount)
	switch mode {
	case LinearSampling:
		return linearPlan(n, budgetNS, met)
	case FlatSampling:
		return flatPlan(n, budgetNS, met)
	default:
		linear := linearPlan(n, budgetNS, met)
		if linear.expectedNS > 2*budgetNS {
			return flatPlan(n, budgetNS, met)
		}
		return linear
	}
}

func linearPlan(n uint64, budgetNS, met float64) samplingPlan {
	totalRuns := n * (n + 1) / 2
	d := uint64(math.Ceil(budgetNS / met / float64(totalRuns)))
	if d == 0 {
		d = 1
	}
	iters := make([]uint64, n)
	for i := range iters {
		iters[i] = uint64(i+1) * d
	}
	return samplingPlan{
		mode:       LinearSampling,
		iters:      iters,
		expectedNS: float64(totalRuns) * float64(d) * met,
	}
}

func flatPlan(n uint64, budgetNS, met float64) samplingPlan {
	perSample := uint64(math.Ceil(budgetNS / met / float64(n)))
	if perSample == 0 {
		perSample = 1
	}
	iters := make([]uint64, n)
	for i := range iters {
		iters[i] = perSample
	}
	return samplingPlan{
		mode:       FlatSampling,
		iters:      iters,
		expectedNS: float64(n) * float64(perSample) * met,
	}
}
