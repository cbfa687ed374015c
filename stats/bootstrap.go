package stats

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Estimator computes a scalar statistic from a univariate sample, e.g.
// (*Sample).Mean. Estimators must not retain the sample they are given: the
// bootstrap hands them reusable scratch views.
type Estimator func(*Sample) float64

// DataEstimator computes a scalar statistic from a bivariate data set.
type DataEstimator func(*Data) float64

// PairEstimator computes a scalar statistic from two samples, e.g. WelchT.
type PairEstimator func(a, b *Sample) float64

// Bootstrap resamples s nresamples times and applies every estimator to
// every resample, returning one Distribution per estimator. Resamples are
// drawn in parallel across workers, each with a private random stream and
// scratch buffer; the input sample is only read.
//
// The random streams are freshly seeded, so two runs produce different
// distributions. Use BootstrapSeeded to reproduce a pass.
func Bootstrap(s *Sample, nresamples int, fns ...Estimator) []Distribution {
	return BootstrapSeeded(s, nresamples, 0, fns...)
}

// BootstrapSeeded is Bootstrap with a root seed for the per-worker random
// streams. A zero seed picks a random one. With a fixed non-zero seed the
// multiset of resampled values is reproducible across runs.
func BootstrapSeeded(s *Sample, nresamples int, seed uint64, fns ...Estimator) []Distribution {
	dists := makeDistributions(len(fns), nresamples)
	if nresamples == 0 {
		return dists
	}
	seed = resolveSeed(seed)
	parallelResample(nresamples, func(worker uint64, lo, hi int) func() error {
		return func() error {
			r := NewResampler(s, NewDPRNG(deriveSeed(seed, worker)))
			for i := lo; i < hi; i++ {
				rs := r.Next()
				for j, fn := range fns {
					dists[j][i] = fn(rs)
				}
			}
			return nil
		}
	})
	return dists
}

// BootstrapData resamples the paired data set nresamples times, drawing the
// same index for x and y so the pairing is preserved, and applies every
// estimator to every resample.
func BootstrapData(d *Data, nresamples int, fns ...DataEstimator) []Distribution {
	return BootstrapDataSeeded(d, nresamples, 0, fns...)
}

// BootstrapDataSeeded is BootstrapData with a root seed, with the same seed
// semantics as BootstrapSeeded.
func BootstrapDataSeeded(d *Data, nresamples int, seed uint64, fns ...DataEstimator) []Distribution {
	dists := makeDistributions(len(fns), nresamples)
	if nresamples == 0 {
		return dists
	}
	seed = resolveSeed(seed)
	parallelResample(nresamples, func(worker uint64, lo, hi int) func() error {
		return func() error {
			r := NewDataResampler(d, NewDPRNG(deriveSeed(seed, worker)))
			for i := lo; i < hi; i++ {
				rs := r.Next()
				for j, fn := range fns {
					dists[j][i] = fn(rs)
				}
			}
			return nil
		}
	})
	return dists
}

// BootstrapTwoSample resamples a and b independently and applies every
// pair estimator to the resample pair. This estimates the sampling
// variability of a two-sample statistic under the observed data, e.g. the
// relative change between a current and a baseline run.
func BootstrapTwoSample(a, b *Sample, nresamples int, fns ...PairEstimator) []Distribution {
	return BootstrapTwoSampleSeeded(a, b, nresamples, 0, fns...)
}

// BootstrapTwoSampleSeeded is BootstrapTwoSample with a root seed.
func BootstrapTwoSampleSeeded(a, b *Sample, nresamples int, seed uint64, fns ...PairEstimator) []Distribution {
	dists := makeDistributions(len(fns), nresamples)
	if nresamples == 0 {
		return dists
	}
	seed = resolveSeed(seed)
	parallelResample(nresamples, func(worker uint64, lo, hi int) func() error {
		return func() error {
			rng := NewDPRNG(deriveSeed(seed, worker))
			ra := NewResampler(a, rng)
			rb := NewResampler(b, rng)
			for i := lo; i < hi; i++ {
				rsA := ra.Next()
				rsB := rb.Next()
				for j, fn := range fns {
					dists[j][i] = fn(rsA, rsB)
				}
			}
			return nil
		}
	})
	return dists
}

// BootstrapMixed performs a mixed two-sample bootstrap: a and b are pooled,
// the pool is resampled with replacement, and each resample is split back
// at len(a). Under the pooling, the two halves come from one population, so
// the resulting distribution models a two-sample statistic under the null
// hypothesis of no difference.
func BootstrapMixed(a, b *Sample, nresamples int, fns ...PairEstimator) []Distribution {
	return BootstrapMixedSeeded(a, b, nresamples, 0, fns...)
}

// BootstrapMixedSeeded is BootstrapMixed with a root seed.
func BootstrapMixedSeeded(a, b *Sample, nresamples int, seed uint64, fns ...PairEstimator) []Distribution {
	dists := makeDistributions(len(fns), nresamples)
	if nresamples == 0 {
		return dists
	}
	nA := a.Len()
	pooled := make([]float64, 0, nA+b.Len())
	pooled = append(pooled, a.xs...)
	pooled = append(pooled, b.xs...)
	pool := &Sample{xs: pooled}

	seed = resolveSeed(seed)
	parallelResample(nresamples, func(worker uint64, lo, hi int) func() error {
		return func() error {
			r := NewResampler(pool, NewDPRNG(deriveSeed(seed, worker)))
			for i := lo; i < hi; i++ {
				rs := r.Next()
				half1 := newScratchSample(rs.xs[:nA])
				half2 := newScratchSample(rs.xs[nA:])
				for j, fn := range fns {
					dists[j][i] = fn(half1, half2)
				}
			}
			return nil
		}
	})
	return dists
}

func makeDistributions(nfns, nresamples int) []Distribution {
	dists := make([]Distribution, nfns)
	for i := range dists {
		dists[i] = make(Distribution, nresamples)
	}
	return dists
}

// resolveSeed replaces a zero root seed with a freshly drawn one, so
// unseeded runs stay uncorrelated while the worker seed derivation remains
// a pure function of the root.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return NewDPRNG(0).State
}

// parallelResample shards nresamples across workers. Every worker owns a
// private random stream derived from the root seed and writes a disjoint
// index range of the output distributions, so no synchronization is needed
// beyond joining the group.
func parallelResample(nresamples int, makeWork func(worker uint64, lo, hi int) func() error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > nresamples {
		workers = nresamples
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * nresamples / workers
		hi := (w + 1) * nresamples / workers
		g.Go(makeWork(uint64(w), lo, hi))
	}
	// Workers never fail; Wait only joins them.
	_ = g.Wait()
}
