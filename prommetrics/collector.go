// Package prommetrics provides a Prometheus implementation of
// recid.MetricsCollector.
//
//	reg := prometheus.NewRegistry()
//	c, err := prommetrics.New(reg, prommetrics.WithNamespace("myapp"))
//	b := index.NewBuilder[string](index.WithMetrics(c))
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/recid"
)

// Collector records index and loader metrics as Prometheus series.
type Collector struct {
	adds         *prometheus.CounterVec
	sorts        prometheus.Counter
	sortEntries  prometheus.Histogram
	sortLatency  prometheus.Histogram
	queries      prometheus.Counter
	queryGroups  prometheus.Histogram
	queryLatency prometheus.Histogram
	loads        prometheus.Counter
	loadedRules  prometheus.Counter
	skippedRules prometheus.Counter
	loadLatency  prometheus.Histogram
}

var _ recid.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace. Default: "recid".
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithLatencyBuckets sets the buckets, in seconds, of the latency histograms.
func WithLatencyBuckets(b []float64) Option {
	return func(o *options) {
		if len(b) > 0 {
			o.buckets = b
		}
	}
}

// New creates a Collector and registers its series with reg. A nil reg
// registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	opts := options{
		namespace: "recid",
		buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := opts.namespace

	c := &Collector{
		adds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "index", Name: "adds_total",
			Help: "Identifier registrations by kind and result.",
		}, []string{"kind", "result"}),
		sorts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "index", Name: "sorts_total",
			Help: "Wildcard bucket sorts.",
		}),
		sortEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "index", Name: "sort_wildcards",
			Help:    "Wildcard entries per sort.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		sortLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "index", Name: "sort_duration_seconds",
			Help:    "Wildcard bucket sort latency.",
			Buckets: opts.buckets,
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "index", Name: "queries_total",
			Help: "Record queries.",
		}),
		queryGroups: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "index", Name: "query_groups",
			Help:    "Matched value groups per query.",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "index", Name: "query_duration_seconds",
			Help:    "Record query latency.",
			Buckets: opts.buckets,
		}),
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "rules", Name: "loads_total",
			Help: "Completed rule loads.",
		}),
		loadedRules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "rules", Name: "loaded_total",
			Help: "Rules registered by loads.",
		}),
		skippedRules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "rules", Name: "skipped_total",
			Help: "Rules skipped by loads.",
		}),
		loadLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "rules", Name: "load_duration_seconds",
			Help:    "Rule load latency.",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
	}

	for _, col := range []prometheus.Collector{
		c.adds, c.sorts, c.sortEntries, c.sortLatency,
		c.queries, c.queryGroups, c.queryLatency,
		c.loads, c.loadedRules, c.skippedRules, c.loadLatency,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordAdd implements recid.MetricsCollector.
func (c *Collector) RecordAdd(kind recid.Kind, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.adds.WithLabelValues(kind.String(), result).Inc()
}

// RecordSort implements recid.MetricsCollector.
func (c *Collector) RecordSort(entries int, d time.Duration) {
	c.sorts.Inc()
	c.sortEntries.Observe(float64(entries))
	c.sortLatency.Observe(d.Seconds())
}

// RecordQuery implements recid.MetricsCollector.
func (c *Collector) RecordQuery(groups int, d time.Duration) {
	c.queries.Inc()
	c.queryGroups.Observe(float64(groups))
	c.queryLatency.Observe(d.Seconds())
}

// RecordLoad implements recid.MetricsCollector.
func (c *Collector) RecordLoad(rules, skipped int, d time.Duration) {
	c.loads.Inc()
	c.loadedRules.Add(float64(rules))
	c.skippedRules.Add(float64(skipped))
	c.loadLatency.Observe(d.Seconds())
}
