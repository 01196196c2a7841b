package respond

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/utemplates/pkg/convert"
	"github.com/vango-dev/utemplates/pkg/node"
	"github.com/vango-dev/utemplates/pkg/render"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next RenderFunc) RenderFunc {
			return func(ctx context.Context, input any) (string, error) {
				order = append(order, name+">")
				out, err := next(ctx, input)
				order = append(order, "<"+name)
				return out, err
			}
		}
	}
	base := func(ctx context.Context, input any) (string, error) {
		order = append(order, "render")
		return "ok", nil
	}

	out, err := Chain(base, mw("a"), nil, mw("b"))(context.Background(), nil)
	if err != nil || out != "ok" {
		t.Fatalf("Chain() = %q, %v", out, err)
	}
	got := strings.Join(order, " ")
	if want := "a> b> render <b <a"; got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestHandlerWritesHTML(t *testing.T) {
	h := Handler(func(r *http.Request) (any, error) {
		return node.Div(node.Class("x"), "Hi & bye"), nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := rec.Body.String(); body != `<div class="x">Hi &amp; bye</div>` {
		t.Errorf("body = %q", body)
	}
	if cl := rec.Header().Get("Content-Length"); cl != "33" {
		t.Errorf("Content-Length = %q", cl)
	}
}

func TestHandlerHead(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodHead, "/", nil), node.P("x"))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
}

func TestHandlerFailures(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(*http.Request) (any, error)
		inLog string
	}{
		{
			name:  "handler error",
			fn:    func(*http.Request) (any, error) { return nil, stderrors.New("db down") },
			inLog: "db down",
		},
		{
			name:  "render error",
			fn:    func(*http.Request) (any, error) { return node.Br("child"), nil },
			inLog: "E302",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			rs := New(WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

			rec := httptest.NewRecorder()
			rs.Handler(tt.fn).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d", rec.Code)
			}
			if strings.Contains(rec.Body.String(), "<br") {
				t.Errorf("partial output leaked: %q", rec.Body.String())
			}
			out := logs.String()
			if !strings.Contains(out, "render failed") || !strings.Contains(out, tt.inLog) || !strings.Contains(out, "path=/page") {
				t.Errorf("log = %q", out)
			}
		})
	}
}

func TestResponderUsesRendererAndMiddleware(t *testing.T) {
	p := convert.NewPipeline(convert.Conversion{
		Name: "double",
		Fn:   convert.For(func(n int) (any, error) { return n * 2, nil }),
	})

	var seen any
	spy := func(next RenderFunc) RenderFunc {
		return func(ctx context.Context, input any) (string, error) {
			seen = input
			return next(ctx, input)
		}
	}

	rs := New(WithRenderer(render.New(render.WithPipeline(p))), WithMiddleware(spy))
	rec := httptest.NewRecorder()
	tree := node.Span(node.Text{Value: 21})
	rs.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), tree)

	if body := rec.Body.String(); body != "<span>42</span>" {
		t.Errorf("body = %q", body)
	}
	if seen == nil {
		t.Error("middleware was not called")
	}

	out, err := rs.Render(context.Background(), "<i>raw</i>")
	if err != nil || out != "<i>raw</i>" {
		t.Errorf("Render() = %q, %v", out, err)
	}
}
