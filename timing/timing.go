package timing

import "math"

const calibrationRounds = 1_000_000

// precision caches the measured clock resolution in nanoseconds.
var precision = int64(-1)

// Precision returns the resolution of timestamps obtained via Now on the
// running system, in nanoseconds. The first call calibrates by taking many
// back-to-back timestamp pairs and keeping the smallest positive
// difference; typical values are 20-100ns on Linux and macOS and 100ns on
// Windows. The measurement loop uses this value as the floor below which a
// timed region cannot be distinguished from clock noise.
func Precision() int64 {
	if precision == int64(-1) {
		precision = calibrate()
	}
	return precision
}

func calibrate() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := Now()
		t2 := Now()
		diff := Since(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
