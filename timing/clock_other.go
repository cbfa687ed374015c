//go:build !windows

package timing

import "time"

// Stamp is a relative timestamp with the highest precision the running
// system offers. Stamps are only comparable to each other within one
// process lifetime; they carry no absolute meaning.
type Stamp = time.Time

// Now returns the current timestamp. The Go runtime backs time.Now with the
// monotonic clock on these platforms, which is as precise as the OS gets.
func Now() Stamp {
	return time.Now()
}

// Since returns the difference between two stamps in nanoseconds. It
// assumes later was taken after earlier and returns a negative value
// otherwise.
func Since(earlier, later Stamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
