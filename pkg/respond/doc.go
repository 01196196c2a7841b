// Package respond serves rendered trees over net/http.
//
//	mux.Handle("/", respond.Handler(func(r *http.Request) (any, error) {
//	    return node.Div(node.Class("greeting"), "Hello"), nil
//	}))
//
// A Responder carries the renderer, a logger and a chain of render
// middleware (see package middleware for metrics and tracing):
//
//	rs := respond.New(
//	    respond.WithRenderer(r),
//	    respond.WithMiddleware(middleware.Prometheus(), middleware.OpenTelemetry()),
//	)
//
// A failed render answers 500 and logs the error; partial output is never
// sent.
package respond
