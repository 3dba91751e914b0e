package service

import (
	"sync"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// StatsTracker records masking operation counts for one context. It is the
// only shared-mutable piece of the engine; all methods are safe for
// concurrent use and never fail.
type StatsTracker struct {
	mu       sync.Mutex
	total    uint64
	degraded uint64
	byType   map[domain.FieldType]uint64
	subjects map[string]struct{}
}

// NewStatsTracker creates a zeroed tracker.
func NewStatsTracker() *StatsTracker {
	return &StatsTracker{
		byType:   make(map[domain.FieldType]uint64),
		subjects: make(map[string]struct{}),
	}
}

// Record counts one masking operation. The subject is tracked by its
// identity hash; inserting the same hash twice is idempotent.
func (t *StatsTracker) Record(fieldType domain.FieldType, subjectHash string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.byType[fieldType]++
	if subjectHash != "" {
		t.subjects[subjectHash] = struct{}{}
	}
}

// RecordDegraded counts one malformed original that was masked on a
// best-effort basis instead of failing the batch.
func (t *StatsTracker) RecordDegraded() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.degraded++
}

// Snapshot returns a copy of the current counters.
func (t *StatsTracker) Snapshot() domain.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	byType := make(map[domain.FieldType]uint64, len(t.byType))
	for ft, n := range t.byType {
		byType[ft] = n
	}

	return domain.Stats{
		TotalMasked:    t.total,
		DegradedInputs: t.degraded,
		ByType:         byType,
		UniqueSubjects: len(t.subjects),
	}
}

// Reset zeroes all counters and clears the unique-subject set.
func (t *StatsTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = 0
	t.degraded = 0
	t.byType = make(map[domain.FieldType]uint64)
	t.subjects = make(map[string]struct{})
}
