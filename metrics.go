package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter       prometheus.Counter
//	    iterationLatency prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordIteration(iteration, groups int, duration time.Duration) {
//	    p.iterationLatency.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// k is the requested cluster count, centroids the number returned,
	// err is nil if successful.
	RecordRun(k, centroids, iterations int, duration time.Duration, err error)

	// RecordIteration is called after each assignment/update cycle.
	// groups is the number of centroids produced by the update.
	RecordIteration(iteration, groups int, duration time.Duration)

	// RecordDegenerate is called when an iteration loses centroids
	// because they attracted no points.
	RecordDegenerate(before, after int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordDegenerate(int, int)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	RunTotalNanos       atomic.Int64
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	DegenerateCount     atomic.Int64
	LostCentroids       atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(k, centroids, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration, groups int, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())
}

// RecordDegenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDegenerate(before, after int) {
	b.DegenerateCount.Add(1)
	b.LostCentroids.Add(int64(before - after))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:          b.RunCount.Load(),
		RunErrors:         b.RunErrors.Load(),
		RunAvgNanos:       avgNanos(b.RunTotalNanos.Load(), b.RunCount.Load()),
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: avgNanos(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		DegenerateCount:   b.DegenerateCount.Load(),
		LostCentroids:     b.LostCentroids.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount          int64
	RunErrors         int64
	RunAvgNanos       int64
	IterationCount    int64
	IterationAvgNanos int64
	DegenerateCount   int64
	LostCentroids     int64
}
