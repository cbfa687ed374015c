package benchkit

import (
	"errors"
	"fmt"
	"time"

	"github.com/TomTonic/benchkit/timing"
)

var (
	// ErrTooFast is returned when a routine cannot be distinguished from
	// the clock resolution even after the warm-up doubled its batch size
	// many times. The measurement would be pure timer noise.
	ErrTooFast = errors.New("benchkit: routine too fast for clock resolution")
	// ErrNoIter is returned when a benchmark body returns without
	// calling Iter.
	ErrNoIter = errors.New("benchkit: benchmark body never called Iter")
)

// maxWarmUpDoublings bounds the batch-size ramp. 2^40 iterations that
// still measure below the clock floor mean the routine was elided or the
// clock is broken; either way, looping further is pointless.
const maxWarmUpDoublings = 40

// Routine produces raw timing observations for the measurement loop. The
// two implementations are in-process Go functions (NewFunctionRoutine) and
// external processes speaking the line protocol (NewProgramRoutine).
type Routine interface {
	// WarmUp runs the routine for at least d without recording samples,
	// to stabilize caches and branch predictors. It returns the total
	// elapsed nanoseconds and iterations executed, which seed the
	// estimate of the mean execution time.
	WarmUp(d time.Duration) (elapsedNS, iters uint64, err error)
	// Measure executes one timed batch per entry of iters and returns
	// the elapsed nanoseconds of each batch.
	Measure(iters []uint64) ([]float64, error)
	// Close releases any resources the routine holds.
	Close() error
}

type functionRoutine struct {
	f func(*Bencher)
}

// NewFunctionRoutine wraps a benchmark body into a Routine. The body is
// called with a Bencher and must call Iter (or IterValue) exactly once.
func NewFunctionRoutine(f func(*Bencher)) Routine {
	return &functionRoutine{f: f}
}

func (r *functionRoutine) runBatch(iters uint64) (float64, error) {
	b := &Bencher{iters: iters}
	r.f(b)
	if !b.iterated {
		return 0, ErrNoIter
	}
	return float64(b.elapsed), nil
}

func (r *functionRoutine) WarmUp(d time.Duration) (uint64, uint64, error) {
	return warmUp(d, r.runBatch)
}

func (r *functionRoutine) Measure(iters []uint64) ([]float64, error) {
	elapsed := make([]float64, len(iters))
	for i, n := range iters {
		e, err := r.runBatch(n)
		if err != nil {
			return nil, err
		}
		elapsed[i] = e
	}
	return elapsed, nil
}

func (r *functionRoutine) Close() error {
	return nil
}

// warmUp drives runBatch in a doubling loop until the budget d is spent.
// Batches that stay below the clock precision floor after
// maxWarmUpDoublings doublings fail with ErrTooFast.
func warmUp(d time.Duration, runBatch func(uint64) (float64, error)) (elapsedNS, iters uint64, err error) {
	floor := float64(timing.Precision())
	batch := uint64(1)
	var totalElapsed, totalIters uint64

	start := timing.Now()
	for doublings := 0; ; doublings++ {
		e, err := runBatch(batch)
		if err != nil {
			return 0, 0, err
		}
		totalIters += batch
		if e > 0 {
			totalElapsed += uint64(e)
		}

		if wall := timing.Since(start, timing.Now()); wall > d.Nanoseconds() {
			if totalElapsed == 0 {
				// Spent the whole budget without one measurable batch.
				return 0, 0, fmt.Errorf("%w: %d iterations below %v ns floor", ErrTooFast, totalIters, floor)
			}
			return totalElapsed, totalIters, nil
		}
		if doublings >= maxWarmUpDoublings && e < floor {
			return 0, 0, fmt.Errorf("%w: batch of %d iterations measured %v ns, floor %v ns", ErrTooFast, batch, e, floor)
		}
		batch *= 2
	}
}
