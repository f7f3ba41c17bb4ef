package index

import "github.com/hupe1980/recid"

type options struct {
	logger   *recid.Logger
	metrics  recid.MetricsCollector
	capacity int
}

func defaultOptions() options {
	return options{
		logger:  recid.NoopLogger(),
		metrics: recid.NoopMetricsCollector{},
	}
}

// Option configures a Builder.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *recid.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = recid.NoopLogger()
		}
		o.logger = l.WithComponent("index")
	}
}

// WithMetrics configures a metrics collector for registrations, sorts and
// queries. Pass nil to disable metrics collection.
func WithMetrics(m recid.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = recid.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithCapacity preallocates room for n registrations.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
