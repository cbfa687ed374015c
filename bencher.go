package benchkit

import "github.com/TomTonic/benchkit/timing"

// Bencher drives the timed iterations of one sample. The harness sets the
// iteration count; the benchmark body calls Iter (or IterValue) exactly
// once to execute and time that many back-to-back calls of the routine.
type Bencher struct {
	iters    uint64
	elapsed  int64
	iterated bool
}

// Iters returns the iteration count the harness requested for the current
// sample. Benchmark bodies rarely need it; Iter handles the looping.
func (b *Bencher) Iters() uint64 {
	return b.iters
}

// Iter times iters back-to-back calls of f in one region. The timed region
// contains nothing but the loop and the calls: no I/O, no channel
// operations, no allocations from the harness itself.
//
// f's result must be kept live or the call may be optimized away; either
// route it through Keep inside f or use IterValue, which does it for you.
func (b *Bencher) Iter(f func()) {
	b.iterated = true
	n := b.iters
	start := timing.Now()
	for i := uint64(0); i < n; i++ {
		f()
	}
	stop := timing.Now()
	b.elapsed = timing.Since(start, stop)
}

// IterValue times iters back-to-back calls of f and keeps the returned
// values live across the timed region, so the computation cannot be elided
// or hoisted.
func IterValue[T any](b *Bencher, f func() T) {
	b.iterated = true
	n := b.iters
	var v T
	start := timing.Now()
	for i := uint64(0); i < n; i++ {
		v = Keep(f())
	}
	stop := timing.Now()
	b.elapsed = timing.Since(start, stop)
	hold(v)
}
