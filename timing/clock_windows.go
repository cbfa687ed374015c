//go:build windows

package timing

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Stamp is a relative timestamp with the highest precision the running
// system offers, here a raw QueryPerformanceCounter reading. Stamps are
// only comparable to each other within one process lifetime.
type Stamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = queryFrequency()
)

// queryFrequency returns the performance counter frequency in ticks per
// second.
func queryFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// Now returns the current timestamp via QueryPerformanceCounter.
func Now() Stamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// Since returns the difference between two stamps in nanoseconds. It
// assumes later was taken after earlier and returns a negative value
// otherwise.
func Since(earlier, later Stamp) int64 {
	diff := later - earlier
	diff *= 1_000_000_000 // ns per second
	diff /= qpcFrequency
	return diff
}
