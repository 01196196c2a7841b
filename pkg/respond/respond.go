package respond

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vango-dev/utemplates/pkg/render"
)

// ContentType is the Content-Type of every rendered response.
const ContentType = "text/html; charset=utf-8"

// RenderFunc renders input to markup. The context carries request-scoped
// values such as the active trace span.
type RenderFunc func(ctx context.Context, input any) (string, error)

// Middleware wraps a RenderFunc.
type Middleware func(next RenderFunc) RenderFunc

// FromRenderer adapts r to a RenderFunc.
func FromRenderer(r *render.Renderer) RenderFunc {
	return func(_ context.Context, input any) (string, error) {
		return r.Render(input)
	}
}

// Chain wraps base with mws. The first middleware is the outermost.
func Chain(base RenderFunc, mws ...Middleware) RenderFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			base = mws[i](base)
		}
	}
	return base
}

// Responder writes rendered trees as HTTP responses.
type Responder struct {
	renderer    *render.Renderer
	middlewares []Middleware
	logger      *slog.Logger
	render      RenderFunc
}

// Option configures a Responder.
type Option func(*Responder)

// WithRenderer sets the renderer. Default: render.New().
func WithRenderer(r *render.Renderer) Option {
	return func(rs *Responder) {
		rs.renderer = r
	}
}

// WithMiddleware appends render middleware.
func WithMiddleware(mws ...Middleware) Option {
	return func(rs *Responder) {
		rs.middlewares = append(rs.middlewares, mws...)
	}
}

// WithLogger sets the logger used for failed renders.
// If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(rs *Responder) {
		rs.logger = l
	}
}

// New creates a Responder.
func New(opts ...Option) *Responder {
	rs := &Responder{}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.renderer == nil {
		rs.renderer = render.New()
	}
	if rs.logger == nil {
		rs.logger = slog.Default()
	}
	rs.render = Chain(FromRenderer(rs.renderer), rs.middlewares...)
	return rs
}

// Render runs input through the middleware chain and the renderer.
func (rs *Responder) Render(ctx context.Context, input any) (string, error) {
	return rs.render(ctx, input)
}

// Handler returns an http.Handler that renders the tree produced by fn.
// Errors from fn or from rendering produce a 500 response.
func (rs *Responder) Handler(fn func(r *http.Request) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input, err := fn(r)
		if err != nil {
			rs.fail(w, r, err)
			return
		}
		rs.Write(w, r, input)
	})
}

// Write renders input and writes it as the response body. Nothing is
// written on render failure except the 500 status.
func (rs *Responder) Write(w http.ResponseWriter, r *http.Request, input any) {
	html, err := rs.render(r.Context(), input)
	if err != nil {
		rs.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", strconv.Itoa(len(html)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, html); err != nil {
		rs.logger.Warn("write response failed",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

func (rs *Responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	rs.logger.Error("render failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

var defaultResponder = New()

// Handler is Responder.Handler on a responder with no conversions.
func Handler(fn func(r *http.Request) (any, error)) http.Handler {
	return defaultResponder.Handler(fn)
}

// Write is Responder.Write on a responder with no conversions.
func Write(w http.ResponseWriter, r *http.Request, input any) {
	defaultResponder.Write(w, r, input)
}
