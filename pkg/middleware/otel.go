package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/utemplates/pkg/respond"
)

// Default tracer name.
const defaultTracerName = "utemplates"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "utemplates").
	TracerName string

	// TracerProvider supplies the tracer.
	// Default: the global provider from otel.GetTracerProvider.
	TracerProvider trace.TracerProvider

	// SpanName is the name given to render spans (default: "utemplates.render").
	SpanName string

	// AttributeExtractor extracts custom attributes from the render input.
	AttributeExtractor func(ctx context.Context, input any) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithSpanName sets the span name.
func WithSpanName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.SpanName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx context.Context, input any) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		SpanName:   "utemplates.render",
	}
}

// OpenTelemetry creates middleware that traces every render.
//
// Each span carries the input's Go type and, on success, the output size.
// Failures are recorded on the span and set its status to Error. The span
// context is passed to the next RenderFunc.
//
// The tracer uses the global OpenTelemetry tracer provider unless
// WithTracerProvider is given. Configure it in main() before serving:
//
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) respond.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(config.TracerName)

	return func(next respond.RenderFunc) respond.RenderFunc {
		return func(ctx context.Context, input any) (string, error) {
			attrs := []attribute.KeyValue{
				attribute.String("utemplates.input_type", fmt.Sprintf("%T", input)),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ctx, input)...)
			}

			spanCtx, span := tracer.Start(ctx, config.SpanName,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			html, err := next(spanCtx, input)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return html, err
			}

			span.SetAttributes(attribute.Int("utemplates.bytes", len(html)))
			span.SetStatus(codes.Ok, "")
			return html, nil
		}
	}
}
