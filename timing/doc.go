// Package timing provides the high-resolution clock the measurement loop
// times benchmark batches with, plus a calibration of its resolution.
//
// On Windows the clock reads QueryPerformanceCounter directly; elsewhere it
// uses the monotonic reading of time.Now. Stamps from Now are relative and
// only meaningful within one process.
package timing
