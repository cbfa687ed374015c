package benchkit

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/TomTonic/benchkit/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunnerMeasuresAndComparesAcrossPasses(t *testing.T) {
	store := NewMemoryBaselineStore()
	runner, err := NewRunner(testConfig(), store, quietLogger())
	require.NoError(t, err)

	id := BenchmarkID{Group: "spin"}
	runner.Register(id, func(b *Bencher) {
		IterValue(b, spin)
	})

	first, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Nil(t, first[0].Comparison, "no baseline on the first pass")
	assert.Equal(t, id, first[0].ID)

	second, err := runner.Run()
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.NotNil(t, second[0].Comparison, "second pass compares against the stored baseline")
	assert.Equal(t, testConfig().ConfidenceLevel, second[0].Comparison.MeanChange.ConfidenceLevel)
}

func TestRunnerSkipsFailingBenchmark(t *testing.T) {
	runner, err := NewRunner(testConfig(), nil, quietLogger())
	require.NoError(t, err)

	runner.Register(BenchmarkID{Group: "broken"}, func(b *Bencher) {
		// Never calls Iter.
	})
	runner.Register(BenchmarkID{Group: "good"}, func(b *Bencher) {
		IterValue(b, spin)
	})

	reports, err := runner.Run()
	require.NoError(t, err, "a per-benchmark failure must not fail the run")
	require.Len(t, reports, 1)
	assert.Equal(t, "good", reports[0].ID.Group)
}

func TestRunnerAbortsOnSpawnFailure(t *testing.T) {
	runner, err := NewRunner(testConfig(), nil, quietLogger())
	require.NoError(t, err)

	runner.Register(BenchmarkID{Group: "good"}, func(b *Bencher) {
		IterValue(b, spin)
	})
	runner.RegisterProgram(BenchmarkID{Group: "missing"}, "/no/such/benchmark-binary")

	reports, err := runner.Run()
	assert.Error(t, err, "an unspawnable benchmark process aborts the run")
	assert.Len(t, reports, 1, "benchmarks completed before the abort are kept")
}

type failingStore struct {
	loadErr  error
	storeErr error
}

func (f *failingStore) Load(BenchmarkID) (*stats.Sample, bool, error) {
	return nil, false, f.loadErr
}

func (f *failingStore) Store(BenchmarkID, *stats.Sample) error {
	return f.storeErr
}

func TestRunnerAbortsOnBaselineStoreFailure(t *testing.T) {
	wantErr := errors.New("disk full")
	runner, err := NewRunner(testConfig(), &failingStore{storeErr: wantErr}, quietLogger())
	require.NoError(t, err)

	runner.Register(BenchmarkID{Group: "spin"}, func(b *Bencher) {
		IterValue(b, spin)
	})

	_, err = runner.Run()
	assert.ErrorIs(t, err, wantErr)
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Resamples = 0
	_, err := NewRunner(cfg, nil, nil)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestMemoryBaselineStoreRoundTrip(t *testing.T) {
	store := NewMemoryBaselineStore()
	id := BenchmarkID{Group: "g", Function: "f"}

	_, ok, err := store.Load(id)
	require.NoError(t, err)
	assert.False(t, ok)

	s := mustSample(t, []float64{1, 2, 3})
	require.NoError(t, store.Store(id, s))

	got, ok, err := store.Load(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s.Values(), got.Values())

	// Distinct identities do not collide.
	_, ok, err = store.Load(BenchmarkID{Group: "g", Function: "other"})
	require.NoError(t, err)
	assert.False(t, ok)
}
