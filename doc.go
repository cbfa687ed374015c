// Package benchkit is a statistics-driven micro-benchmark harness. It runs
// a routine many times, turns the raw timings into bootstrapped confidence
// intervals on the per-iteration cost, and detects regressions against a
// stored baseline with Welch's t-test.
//
// # Measuring a function
//
//	runner, err := benchkit.NewRunner(benchkit.DefaultConfig(), benchkit.NewMemoryBaselineStore(), nil)
//	runner.Register(benchkit.BenchmarkID{Group: "fib", Value: "20"}, func(b *benchkit.Bencher) {
//		benchkit.IterValue(b, func() int { return fib(20) })
//	})
//	reports, err := runner.Run()
//
// Each report carries the typical estimate (regression slope or mean), an
// outlier classification, and, when a baseline existed, the comparison.
//
// # Measuring an external process
//
//	runner.RegisterProgram(benchkit.BenchmarkID{Group: "sortbench"}, "./sortbench")
//
// The child reads a decimal iteration count per line on stdin, runs that
// many iterations, and answers with the elapsed nanoseconds per line on
// stdout.
//
// # Packages
//
//   - benchkit: measurement loop, analysis, comparison, harness
//   - benchkit/stats: samples, bootstrap, regression, outliers, t-test
//   - benchkit/timing: high-resolution clock and its resolution
package benchkit
