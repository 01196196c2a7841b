// Package middleware provides render middleware for observability.
//
// This package includes:
//   - Prometheus metrics middleware
//   - OpenTelemetry tracing middleware
//
// Both return a respond.Middleware and can be combined:
//
//	rs := respond.New(
//	    respond.WithRenderer(r),
//	    respond.WithMiddleware(
//	        middleware.OpenTelemetry(middleware.WithTracerName("site")),
//	        middleware.Prometheus(),
//	    ),
//	)
//
// # Prometheus Metrics
//
//   - utemplates_renders_total{status}: renders by outcome
//   - utemplates_render_duration_seconds: render duration histogram
//   - utemplates_render_errors_total{category}: failures by error category
//   - utemplates_rendered_bytes: output size histogram
//
// Expose them with promhttp:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # Tracing
//
// OpenTelemetry opens one span per render and hands the span context to the
// wrapped RenderFunc, so conversions and nested calls can attach to it.
package middleware
