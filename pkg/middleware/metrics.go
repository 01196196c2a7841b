package middleware

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/respond"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "utemplates").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "utemplates",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the render collectors registered on one registry.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderErrors   *prometheus.CounterVec
	renderedBytes  prometheus.Histogram
}

// NewMetrics registers the render collectors. It panics if they are
// already registered on the configured registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of renders by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders by error category",
			ConstLabels: config.ConstLabels,
		}, []string{"category"}),

		renderedBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_bytes",
			Help:        "Size of rendered documents in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),
	}
}

// Middleware returns render middleware recording into m.
func (m *Metrics) Middleware() respond.Middleware {
	return func(next respond.RenderFunc) respond.RenderFunc {
		return func(ctx context.Context, input any) (string, error) {
			start := time.Now()
			html, err := next(ctx, input)
			m.renderDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				m.renderErrors.WithLabelValues(categorizeError(err)).Inc()
				m.rendersTotal.WithLabelValues("error").Inc()
				return html, err
			}
			m.rendersTotal.WithLabelValues("success").Inc()
			m.renderedBytes.Observe(float64(len(html)))
			return html, nil
		}
	}
}

// Prometheus creates middleware that collects Prometheus metrics for renders.
//
// Metrics collected:
//   - utemplates_renders_total: Counter of renders by status
//   - utemplates_render_duration_seconds: Histogram of render duration
//   - utemplates_render_errors_total: Counter of failures by error category
//   - utemplates_rendered_bytes: Histogram of output size
//
// Example:
//
//	rs := respond.New(
//	    respond.WithMiddleware(
//	        middleware.Prometheus(middleware.WithNamespace("site")),
//	    ),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) respond.Middleware {
	return NewMetrics(opts...).Middleware()
}

// categorizeError labels err by its error category. Errors without one are
// "internal". Keeps label cardinality bounded.
func categorizeError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Category != "" {
		return string(e.Category)
	}
	return "internal"
}
