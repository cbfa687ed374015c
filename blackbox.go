package benchkit

import "runtime"

var sink any

// Keep is an opaque optimization barrier. Passing a routine's result
// through Keep stops the compiler from proving the result unused and
// eliding the computation, and keeps the call inside the timed region.
// Every benchmarked routine must route its result through Keep (IterValue
// does this automatically); without the barrier, downstream measurements
// are meaningless.
//
//go:noinline
func Keep[T any](v T) T {
	runtime.KeepAlive(v)
	return v
}

// hold publishes v to a package-level sink after a timed region ends, so
// the final value of an iteration loop stays observably live. It is not
// called inside timed regions because the interface conversion may
// allocate.
//
//go:noinline
func hold(v any) {
	sink = v
}
