package recid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prommetrics provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAdd is called after each registration attempt. err is nil if the
	// identifier was accepted.
	RecordAdd(kind Kind, err error)

	// RecordSort is called after the wildcard buckets were sorted.
	// entries is the number of wildcard entries sorted.
	RecordSort(entries int, duration time.Duration)

	// RecordQuery is called after each record query with the number of
	// distinct values matched.
	RecordQuery(groups int, duration time.Duration)

	// RecordLoad is called after each bulk rule load.
	RecordLoad(rules, skipped int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(Kind, error)              {}
func (NoopMetricsCollector) RecordSort(int, time.Duration)      {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)     {}
func (NoopMetricsCollector) RecordLoad(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddErrors       atomic.Int64
	SortCount       atomic.Int64
	SortTotalNanos  atomic.Int64
	QueryCount      atomic.Int64
	QueryGroups     atomic.Int64
	QueryTotalNanos atomic.Int64
	LoadCount       atomic.Int64
	LoadRules       atomic.Int64
	LoadSkipped     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(_ Kind, err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(_ int, duration time.Duration) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(groups int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryGroups.Add(int64(groups))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rules, skipped int, _ time.Duration) {
	b.LoadCount.Add(1)
	b.LoadRules.Add(int64(rules))
	b.LoadSkipped.Add(int64(skipped))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:      b.AddCount.Load(),
		AddErrors:     b.AddErrors.Load(),
		SortCount:     b.SortCount.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryGroups:   b.QueryGroups.Load(),
		QueryAvgNanos: avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		LoadCount:     b.LoadCount.Load(),
		LoadRules:     b.LoadRules.Load(),
		LoadSkipped:   b.LoadSkipped.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount      int64
	AddErrors     int64
	SortCount     int64
	QueryCount    int64
	QueryGroups   int64
	QueryAvgNanos int64
	LoadCount     int64
	LoadRules     int64
	LoadSkipped   int64
}
