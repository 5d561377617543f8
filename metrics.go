package bitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting reallocation metrics
// of Dynamic bitsets. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after storage grew from oldBlocks to newBlocks.
	RecordGrow(oldBlocks, newBlocks int, duration time.Duration)

	// RecordShrink is called after storage shrank from oldBlocks to newBlocks.
	// newBlocks is 0 when the storage was released.
	RecordShrink(oldBlocks, newBlocks int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, time.Duration)   {}
func (NoopMetricsCollector) RecordShrink(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use, so one collector can serve many bitsets.
type BasicMetricsCollector struct {
	GrowCount       atomic.Int64
	ShrinkCount     atomic.Int64
	BlocksAllocated atomic.Int64
	BlocksReleased  atomic.Int64
	ReallocNanos    atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldBlocks, newBlocks int, duration time.Duration) {
	b.GrowCount.Add(1)
	b.BlocksAllocated.Add(int64(newBlocks - oldBlocks))
	b.ReallocNanos.Add(duration.Nanoseconds())
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldBlocks, newBlocks int, duration time.Duration) {
	b.ShrinkCount.Add(1)
	b.BlocksReleased.Add(int64(oldBlocks - newBlocks))
	b.ReallocNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:       b.GrowCount.Load(),
		ShrinkCount:     b.ShrinkCount.Load(),
		BlocksAllocated: b.BlocksAllocated.Load(),
		BlocksReleased:  b.BlocksReleased.Load(),
		ReallocAvgNanos: b.getAvgReallocNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgReallocNanos() int64 {
	count := b.GrowCount.Load() + b.ShrinkCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReallocNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount       int64
	ShrinkCount     int64
	BlocksAllocated int64
	BlocksReleased  int64
	ReallocAvgNanos int64
}
