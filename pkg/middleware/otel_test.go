package middleware

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/utemplates/pkg/node"
	"github.com/vango-dev/utemplates/pkg/render"
	"github.com/vango-dev/utemplates/pkg/respond"
)

// recordingSpan captures the calls the middleware makes. Other trace.Span
// methods are left to the nil embedded interface.
type recordingSpan struct {
	trace.Span
	name   string
	kind   trace.SpanKind
	attrs  []attribute.KeyValue
	errs   []error
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}
func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordingSpan) End(...trace.SpanEndOption)           { s.ended = true }
func (s *recordingSpan) SpanContext() trace.SpanContext       { return trace.SpanContext{} }
func (s *recordingSpan) IsRecording() bool                    { return !s.ended }

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

type recordingTracer struct {
	trace.Tracer
	mu    sync.Mutex
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: cfg.Attributes()}
	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingProvider struct {
	trace.TracerProvider
	tracer *recordingTracer
	names  []string
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	p.names = append(p.names, name)
	return p.tracer
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func TestOpenTelemetryMiddleware_Success(t *testing.T) {
	tp := newRecordingProvider()
	mw := OpenTelemetry(
		WithTracerProvider(tp),
		WithTracerName("site"),
		WithAttributeExtractor(func(context.Context, any) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	var inner trace.Span
	base := respond.FromRenderer(render.New())
	rf := mw(func(ctx context.Context, input any) (string, error) {
		inner = trace.SpanFromContext(ctx)
		return base(ctx, input)
	})

	html, err := rf(context.Background(), node.P("hi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tp.names) != 1 || tp.names[0] != "site" {
		t.Errorf("tracer names = %v", tp.names)
	}
	if len(tp.tracer.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tp.tracer.spans))
	}
	span := tp.tracer.spans[0]
	if inner != trace.Span(span) {
		t.Error("expected span context to reach the wrapped RenderFunc")
	}
	if span.name != "utemplates.render" || span.kind != trace.SpanKindInternal {
		t.Errorf("name = %q, kind = %v", span.name, span.kind)
	}
	if !span.ended || span.status != codes.Ok {
		t.Errorf("ended = %v, status = %v", span.ended, span.status)
	}
	if v, ok := span.attr("utemplates.input_type"); !ok || v.AsString() != "node.Tag" {
		t.Errorf("input_type = %v", v.Emit())
	}
	if v, ok := span.attr("utemplates.bytes"); !ok || v.AsInt64() != int64(len(html)) {
		t.Errorf("bytes = %v", v.Emit())
	}
	if v, ok := span.attr("test.attr"); !ok || v.AsString() != "ok" {
		t.Errorf("test.attr = %v", v.Emit())
	}
}

func TestOpenTelemetryMiddleware_ErrorPropagates(t *testing.T) {
	tp := newRecordingProvider()
	boom := stderrors.New("boom")
	rf := OpenTelemetry(WithTracerProvider(tp), WithSpanName("page"))(
		func(context.Context, any) (string, error) { return "", boom },
	)

	if _, err := rf(context.Background(), nil); !stderrors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	span := tp.tracer.spans[0]
	if span.name != "page" {
		t.Errorf("name = %q", span.name)
	}
	if span.status != codes.Error || len(span.errs) != 1 || !span.ended {
		t.Errorf("status = %v, errs = %v, ended = %v", span.status, span.errs, span.ended)
	}
	if _, ok := span.attr("utemplates.bytes"); ok {
		t.Error("failed render must not record bytes")
	}
}

func TestOpenTelemetryMiddleware_GlobalProvider(t *testing.T) {
	rf := OpenTelemetry()(respond.FromRenderer(render.New()))
	html, err := rf(context.Background(), "<b>x</b>")
	if err != nil || html != "<b>x</b>" {
		t.Errorf("render = %q, %v", html, err)
	}
}
