package skewheap

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Only the rare, expensive events are reported; Put and Take stay free of
// instrumentation.
type MetricsCollector interface {
	// RecordCompaction is called after each compaction pass.
	RecordCompaction(slotsBefore, slotsAfter, relocated int, duration time.Duration)

	// RecordAdopt is called after each adopt. adopted is the number of items
	// gained, transplanted the number of nodes copied between arenas.
	RecordAdopt(adopted, transplanted int, duration time.Duration, err error)

	// RecordExhausted is called when a put cannot obtain a node slot.
	RecordExhausted(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompaction(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordAdopt(int, int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordExhausted(error)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// It is safe to share between heaps.
type BasicMetricsCollector struct {
	CompactionCount      atomic.Int64
	CompactionTotalNanos atomic.Int64
	SlotsReleased        atomic.Int64
	NodesRelocated       atomic.Int64
	AdoptCount           atomic.Int64
	AdoptErrors          atomic.Int64
	ItemsAdopted         atomic.Int64
	NodesTransplanted    atomic.Int64
	ExhaustedCount       atomic.Int64
	MemoryLimitCount     atomic.Int64
}

// RecordCompaction implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompaction(slotsBefore, slotsAfter, relocated int, duration time.Duration) {
	b.CompactionCount.Add(1)
	b.CompactionTotalNanos.Add(duration.Nanoseconds())
	b.SlotsReleased.Add(int64(slotsBefore - slotsAfter))
	b.NodesRelocated.Add(int64(relocated))
}

// RecordAdopt implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdopt(adopted, transplanted int, duration time.Duration, err error) {
	b.AdoptCount.Add(1)
	if err != nil {
		b.AdoptErrors.Add(1)
		return
	}
	b.ItemsAdopted.Add(int64(adopted))
	b.NodesTransplanted.Add(int64(transplanted))
}

// RecordExhausted implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExhausted(err error) {
	if errors.Is(err, ErrMemoryLimitExceeded) {
		b.MemoryLimitCount.Add(1)
		return
	}
	b.ExhaustedCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CompactionCount:    b.CompactionCount.Load(),
		CompactionAvgNanos: b.getAvgCompactionNanos(),
		SlotsReleased:      b.SlotsReleased.Load(),
		NodesRelocated:     b.NodesRelocated.Load(),
		AdoptCount:         b.AdoptCount.Load(),
		AdoptErrors:        b.AdoptErrors.Load(),
		ItemsAdopted:       b.ItemsAdopted.Load(),
		NodesTransplanted:  b.NodesTransplanted.Load(),
		ExhaustedCount:     b.ExhaustedCount.Load(),
		MemoryLimitCount:   b.MemoryLimitCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCompactionNanos() int64 {
	count := b.CompactionCount.Load()
	if count == 0 {
		return 0
	}
	return b.CompactionTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CompactionCount    int64
	CompactionAvgNanos int64
	SlotsReleased      int64
	NodesRelocated     int64
	AdoptCount         int64
	AdoptErrors        int64
	ItemsAdopted       int64
	NodesTransplanted  int64
	ExhaustedCount     int64
	MemoryLimitCount   int64
}
