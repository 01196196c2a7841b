package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/utemplates/internal/treefile"
	"github.com/vango-dev/utemplates/pkg/middleware"
	"github.com/vango-dev/utemplates/pkg/render"
	"github.com/vango-dev/utemplates/pkg/respond"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		noMetrics  bool
	)

	cmd := &cobra.Command{
		Use:   "serve <dir>",
		Short: "Serve a directory of tree documents",
		Long: `Serve every *.json tree document under a directory as HTML.

A request for /docs/intro renders <dir>/docs/intro.json; / renders
<dir>/index.json. Documents are read on every request.

Metrics are exposed on /metrics unless --no-metrics is set.

Examples:
  utmpl serve ./pages
  utmpl serve ./pages --addr 0.0.0.0:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRenderer(configPath)
			if err != nil {
				return err
			}

			var reg *prometheus.Registry
			if !noMetrics {
				reg = prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           newServer(args[0], r, reg, slog.Default()),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			success(cmd, "Serving %s on http://%s", args[0], addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			info(cmd, "Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8080", "Address to listen on")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file (default from environment)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the /metrics endpoint")

	return cmd
}

// newServer builds the document router. A nil reg disables metrics.
func newServer(root string, r *render.Renderer, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	mws := []respond.Middleware{middleware.OpenTelemetry()}
	if reg != nil {
		mws = append(mws, middleware.Prometheus(middleware.WithRegistry(reg)))
	}
	rs := respond.New(
		respond.WithRenderer(r),
		respond.WithLogger(logger),
		respond.WithMiddleware(mws...),
	)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if reg != nil {
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	docHandler := rs.Handler(func(r *http.Request) (any, error) {
		return treefile.Load(documentPath(root, r.URL.Path))
	})
	router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(documentPath(root, r.URL.Path)); err != nil {
			http.NotFound(w, r)
			return
		}
		docHandler.ServeHTTP(w, r)
	})
	return router
}

// documentPath maps a URL path to a document under root. The path is
// cleaned first so it cannot leave root.
func documentPath(root, urlPath string) string {
	p := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if p == "" {
		p = "index"
	}
	p = strings.TrimSuffix(p, ".html")
	return filepath.Join(root, filepath.FromSlash(p)+".json")
}
