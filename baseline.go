package benchkit

import (
	"sync"

	"github.com/TomTonic/benchkit/stats"
)

// BaselineStore persists per-iteration cost samples between runs, keyed by
// benchmark identity. The harness loads the baseline once at comparison
// start and stores the current sample once at the end; storage format and
// location are the implementation's concern.
type BaselineStore interface {
	// Load returns the stored sample for id, or ok == false on a first
	// run. Errors indicate the storage itself is inaccessible, which
	// aborts the whole run.
	Load(id BenchmarkID) (s *stats.Sample, ok bool, err error)
	// Store saves the current run's sample under id, replacing any
	// previous baseline.
	Store(id BenchmarkID, s *stats.Sample) error
}

// MemoryBaselineStore keeps baselines in memory for the lifetime of one
// process. It is mainly useful for tests and for comparing two routines
// within a single run.
type MemoryBaselineStore struct {
	mu      sync.Mutex
	samples map[string]*stats.Sample
}

// NewMemoryBaselineStore returns an empty in-memory store.
func NewMemoryBaselineStore() *MemoryBaselineStore {
	return &MemoryBaselineStore{samples: make(map[string]*stats.Sample)}
}

func (m *MemoryBaselineStore) Load(id BenchmarkID) (*stats.Sample, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.samples[id.String()]
	return s, ok, nil
}

func (m *MemoryBaselineStore) Store(id BenchmarkID, s *stats.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[id.String()] = s
	return nil
}

var _ BaselineStore = (*MemoryBaselineStore)(nil)
