package benchkit

import (
	"fmt"

	"github.com/TomTonic/benchkit/stats"
)

// Measurement holds the raw observations of one benchmark run: for each
// sample, the iteration count executed and the elapsed nanoseconds of the
// timed batch.
type Measurement struct {
	Iters   []float64
	Elapsed []float64
	// Mode is the sampling mode the plan resolved to.
	Mode SamplingMode
}

// Data returns the (iterations, elapsed) pairs for regression analysis.
func (m *Measurement) Data() (*stats.Data, error) {
	return stats.NewData(m.Iters, m.Elapsed)
}

// AvgTimes returns the derived per-iteration cost sample, elapsed[i] /
// iters[i] for every collected pair.
func (m *Measurement) AvgTimes() (*stats.Sample, error) {
	avg := make([]float64, len(m.Iters))
	for i := range avg {
		avg[i] = m.Elapsed[i] / m.Iters[i]
	}
	return stats.NewSample(avg)
}

// Measure warms the routine up, plans the iteration schedule from the
// warm-up's mean-execution-time estimate, and collects the configured
// number of timed samples. It owns no concurrency: warm-up and measurement
// run strictly single-threaded, and nothing else should compete for the
// CPU while a timed region runs.
func Measure(r Routine, cfg Config) (*Measurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	wuElapsed, wuIters, err := r.WarmUp(cfg.WarmUpTime)
	if err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}
	met := float64(wuElapsed) / float64(wuIters)

	plan := planSamples(cfg.SamplingMode, cfg.SampleCount, float64(cfg.MeasurementTime.Nanoseconds()), met)

	elapsed, err := r.Measure(plan.iters)
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}

	iters := make([]float64, len(plan.iters))
	for i, n := range plan.iters {
		iters[i] = float64(n)
	}
	return &Measurement{Iters: iters, Elapsed: elapsed, Mode: plan.mode}, nil
}
