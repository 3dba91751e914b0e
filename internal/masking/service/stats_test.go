package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

func TestStatsTracker(t *testing.T) {
	t.Run("Success_RecordCounts", func(t *testing.T) {
		tracker := NewStatsTracker()

		tracker.Record(domain.FieldTypeName, "hash-a")
		tracker.Record(domain.FieldTypeEmail, "hash-a")
		tracker.Record(domain.FieldTypeName, "hash-b")

		stats := tracker.Snapshot()
		assert.Equal(t, uint64(3), stats.TotalMasked)
		assert.Equal(t, uint64(2), stats.ByType[domain.FieldTypeName])
		assert.Equal(t, uint64(1), stats.ByType[domain.FieldTypeEmail])
		assert.Equal(t, 2, stats.UniqueSubjects)
	})

	t.Run("Success_SubjectInsertIdempotent", func(t *testing.T) {
		tracker := NewStatsTracker()

		for i := 0; i < 5; i++ {
			tracker.Record(domain.FieldTypePhone, "hash-a")
		}

		stats := tracker.Snapshot()
		assert.Equal(t, uint64(5), stats.TotalMasked)
		assert.Equal(t, 1, stats.UniqueSubjects)
	})

	t.Run("Success_RecordDegraded", func(t *testing.T) {
		tracker := NewStatsTracker()

		tracker.RecordDegraded()
		tracker.RecordDegraded()

		assert.Equal(t, uint64(2), tracker.Snapshot().DegradedInputs)
	})

	t.Run("Success_Reset", func(t *testing.T) {
		tracker := NewStatsTracker()
		tracker.Record(domain.FieldTypeName, "hash-a")
		tracker.RecordDegraded()

		tracker.Reset()

		stats := tracker.Snapshot()
		assert.Equal(t, uint64(0), stats.TotalMasked)
		assert.Equal(t, uint64(0), stats.DegradedInputs)
		assert.Empty(t, stats.ByType)
		assert.Equal(t, 0, stats.UniqueSubjects)
	})

	t.Run("Success_SnapshotIsACopy", func(t *testing.T) {
		tracker := NewStatsTracker()
		tracker.Record(domain.FieldTypeName, "hash-a")

		stats := tracker.Snapshot()
		stats.ByType[domain.FieldTypeName] = 99

		assert.Equal(t, uint64(1), tracker.Snapshot().ByType[domain.FieldTypeName])
	})

	t.Run("Success_ConcurrentRecording", func(t *testing.T) {
		tracker := NewStatsTracker()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					tracker.Record(domain.FieldTypeName, "hash-a")
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, uint64(1000), tracker.Snapshot().TotalMasked)
	})
}
