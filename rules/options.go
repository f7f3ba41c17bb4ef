package rules

import (
	"runtime"

	"golang.org/x/time/rate"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/codec"
)

type options struct {
	logger      *recid.Logger
	metrics     recid.MetricsCollector
	classifier  *recid.Classifier
	codec       codec.Codec
	concurrency int
	limiter     *rate.Limiter
	filter      func(name string) bool
}

func defaultOptions() options {
	return options{
		logger:      recid.NoopLogger().WithComponent("rules"),
		metrics:     recid.NoopMetricsCollector{},
		classifier:  recid.NewClassifier(),
		codec:       codec.Default,
		concurrency: runtime.GOMAXPROCS(0),
		filter:      Supported,
	}
}

// Option configures a Loader.
type Option func(*options)

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *recid.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = recid.NoopLogger()
		}
		o.logger = l.WithComponent("rules")
	}
}

// WithMetrics configures a metrics collector for completed loads.
// Pass nil to disable metrics collection.
func WithMetrics(m recid.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = recid.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithClassifier sets the classifier used for rule ids.
func WithClassifier(c *recid.Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithCodec sets the codec used for JSON and JSON lines documents.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithConcurrency sets how many blobs are fetched and decoded in parallel.
// Default: GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithRateLimit limits blob opens to perSecond with the given burst.
// A non-positive perSecond removes the limit.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *options) {
		if perSecond <= 0 {
			o.limiter = nil
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithFilter selects which listed blobs are loaded. Default: Supported.
func WithFilter(fn func(name string) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.filter = fn
		}
	}
}
