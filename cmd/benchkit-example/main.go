package main

import (
	"fmt"
	"time"

	"github.com/TomTonic/benchkit"
)

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}

func main() {
	cfg := benchkit.DefaultConfig()
	cfg.WarmUpTime = 500 * time.Millisecond
	cfg.MeasurementTime = 2 * time.Second
	cfg.Resamples = 10_000

	runner, err := benchkit.NewRunner(cfg, benchkit.NewMemoryBaselineStore(), nil)
	if err != nil {
		panic(err)
	}

	runner.Register(benchkit.BenchmarkID{Group: "fib", Value: "15"}, func(b *benchkit.Bencher) {
		benchkit.IterValue(b, func() int { return fib(15) })
	})

	// The second pass compares against the baseline the first one stored
	// in the in-memory store.
	for pass := 1; pass <= 2; pass++ {
		reports, err := runner.Run()
		if err != nil {
			panic(err)
		}
		for _, r := range reports {
			typical := r.Estimates.Typical()
			fmt.Printf("%s: %.1f ns/iter [%.1f, %.1f] (%.0f%% CI)\n",
				r.ID, typical.Point, typical.LowerBound, typical.UpperBound,
				typical.ConfidenceLevel*100)
			fmt.Printf("  outliers: %d/%d\n", r.Outliers.Total(), r.Outliers.SampleSize)
			if r.Estimates.Slope != nil {
				fmt.Printf("  linear fit R² = %.6f\n", r.RSquared)
			}
			if c := r.Comparison; c != nil {
				fmt.Printf("  vs. baseline: %s (p=%.4f, mean %+.2f%%)\n",
					c.Classify(cfg.NoiseThreshold, cfg.SignificanceLevel),
					c.PValue, c.MeanChange.Point*100)
			}
		}
	}
}
