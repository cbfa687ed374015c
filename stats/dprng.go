package stats

import (
	"math/bits"
	"math/rand/v2"
)

// DPRNG is a deterministic pseudo-random number generator based on the
// xorshift* algorithm (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// It has a period of 2^64-1 and a constant per-call runtime, which keeps the
// resampling loop free of allocation and syscall noise.
// It is not cryptographically secure and not safe for concurrent use; the
// bootstrap driver gives every worker its own instance.
// The internal state must never be zero.
type DPRNG struct {
	State uint64
}

// NewDPRNG returns a generator seeded with seed. A zero seed selects a
// non-deterministic seed, so results differ between runs; pass a fixed
// non-zero seed to reproduce a resampling stream.
func NewDPRNG(seed uint64) *DPRNG {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &DPRNG{State: seed}
}

// Uint64 returns the next pseudo-random number in the sequence.
func (r *DPRNG) Uint64() uint64 {
	x := r.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.State = x
	return x * 0x2545F4914F6CDD1D
}

// Uint64N returns a pseudo-random number in the half-open interval [0, n),
// suitable for drawing resample indices. It uses Lemire's multiply-shift
// reduction instead of a modulo, and compensates for bias.
// For n < 2, Uint64N returns 0.
//
// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
func (r *DPRNG) Uint64N(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	hi, lo := bits.Mul64(r.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.Uint64(), n)
		}
	}
	return hi
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// It uses the 52 mantissa bits of a random uint64, the maximum randomness a
// float64 can represent without breaking uniformity.
func (r *DPRNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// deriveSeed expands a root seed into per-worker seeds via a splitmix64
// step, so parallel workers never share correlated xorshift* streams.
func deriveSeed(root, worker uint64) uint64 {
	z := root + (worker+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	for z == 0 {
		z = rand.Uint64()
	}
	return z
}
