package benchkit

import (
	"errors"
	"fmt"
	"log/slog"
)

// Runner measures and analyzes a set of registered benchmarks. Failures
// local to one benchmark (too-fast routines, protocol violations) are
// logged and skipped; resource-acquisition failures (spawning a benchmark
// process, touching the baseline store) abort the run.
type Runner struct {
	cfg    Config
	store  BaselineStore
	logger *slog.Logger
	benchs []registration
}

type registration struct {
	id   BenchmarkID
	open func() (Routine, error)
}

// NewRunner creates a runner with the given configuration. store may be
// nil, disabling baseline comparison. logger may be nil, in which case
// slog.Default() is used.
func NewRunner(cfg Config, store BaselineStore, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, store: store, logger: logger}, nil
}

// Register adds an in-process benchmark body under the given identity.
func (r *Runner) Register(id BenchmarkID, f func(*Bencher)) {
	r.benchs = append(r.benchs, registration{
		id:   id,
		open: func() (Routine, error) { return NewFunctionRoutine(f), nil },
	})
}

// RegisterProgram adds an external benchmark process under the given
// identity. The process is spawned when the benchmark runs and torn down
// afterwards.
func (r *Runner) RegisterProgram(id BenchmarkID, name string, args ...string) {
	r.benchs = append(r.benchs, registration{
		id: id,
		open: func() (Routine, error) {
			return NewProgramRoutine(name, args...)
		},
	})
}

// Run measures, analyzes and (when a baseline exists) compares every
// registered benchmark, returning one report per benchmark that
// completed.
func (r *Runner) Run() ([]*Report, error) {
	reports := make([]*Report, 0, len(r.benchs))
	for _, bench := range r.benchs {
		report, err := r.runOne(bench)
		if err != nil {
			var abort *runAbortError
			if errors.As(err, &abort) {
				return reports, abort.err
			}
			r.logger.Error("benchmark failed",
				slog.String("benchmark", bench.id.String()),
				slog.Any("error", err))
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *Runner) runOne(bench registration) (_ *Report, err error) {
	log := r.logger.With(slog.String("benchmark", bench.id.String()))

	routine, err := bench.open()
	if err != nil {
		// Cannot acquire the benchmark target at all; the whole run is
		// in doubt, not just this benchmark.
		return nil, &runAbortError{err: err}
	}
	defer func() {
		if closeErr := routine.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	log.Info("measuring",
		slog.Duration("warm_up", r.cfg.WarmUpTime),
		slog.Duration("measurement_time", r.cfg.MeasurementTime))
	m, err := Measure(routine, r.cfg)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(bench.id, m, r.cfg)
	if err != nil {
		return nil, err
	}
	typical := report.Estimates.Typical()
	log.Info("estimated",
		slog.String("mode", m.Mode.String()),
		slog.Float64("point_ns", typical.Point),
		slog.Float64("lower_ns", typical.LowerBound),
		slog.Float64("upper_ns", typical.UpperBound))
	if total := report.Outliers.Total(); total > 0 {
		log.Info("outliers found",
			slog.Int("count", total),
			slog.Int("sample_size", report.Outliers.SampleSize))
	}

	if r.store != nil {
		if err := r.compareAndStore(report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (r *Runner) compareAndStore(report *Report) error {
	baseline, ok, err := r.store.Load(report.ID)
	if err != nil {
		return &runAbortError{err: fmt.Errorf("benchkit: load baseline for %s: %w", report.ID, err)}
	}
	if ok {
		comparison, err := Compare(report.AvgTimes, baseline, r.cfg)
		if err != nil {
			return err
		}
		report.Comparison = comparison
		r.logger.Info("compared against baseline",
			slog.String("benchmark", report.ID.String()),
			slog.String("change", comparison.Classify(r.cfg.NoiseThreshold, r.cfg.SignificanceLevel).String()),
			slog.Float64("p_value", comparison.PValue),
			slog.Float64("mean_change", comparison.MeanChange.Point))
	}
	if err := r.store.Store(report.ID, report.AvgTimes); err != nil {
		return &runAbortError{err: fmt.Errorf("benchkit: store baseline for %s: %w", report.ID, err)}
	}
	return nil
}

// runAbortError marks a resource-acquisition failure. Per-benchmark
// failures (too-fast routines, protocol violations, degenerate samples)
// are logged and skipped; these abort the whole run.
type runAbortError struct {
	err error
}

func (e *runAbortError) Error() string { return e.err.Error() }
func (e *runAbortError) Unwrap() error { return e.err }
