// Package httpapi serves the wordcase transforms as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/rulewatch"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Config configures the router.
type Config struct {
	// Rules supplies the active Inflector. Defaults to the built-in rules.
	Rules *rulewatch.Holder
	// Caser renders case styles. Defaults to casing.New().
	Caser *casing.Caser

	// Metrics records request and transform counters. Optional.
	Metrics *Metrics
	// Gatherer backs GET /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// CORSOrigins lists the allowed browser origins. Empty disables CORS.
	CORSOrigins []string

	// MaxInputBytes caps every input value. Defaults to 64 KiB.
	MaxInputBytes int
	// MaxBatch caps the number of values in one request. Defaults to 1000.
	MaxBatch int
	// RequestTimeout bounds each request. Defaults to 10s.
	RequestTimeout time.Duration

	// Logger receives one line per request. Defaults to a discarding logger.
	Logger *slog.Logger
}

func (c *Config) setDefaults() {
	if c.Rules == nil {
		c.Rules = rulewatch.NewStatic(nil)
	}
	if c.Caser == nil {
		c.Caser = casing.New()
	}
	if c.Gatherer == nil {
		c.Gatherer = prometheus.DefaultGatherer
	}
	if c.MaxInputBytes <= 0 {
		c.MaxInputBytes = 64 * 1024
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = 1000
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// NewRouter creates the HTTP router.
func NewRouter(cfg Config) http.Handler {
	cfg.setDefaults()
	a := &api{cfg: cfg}

	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.middleware)
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}).Handler)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", a.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/styles", a.handleStyles)
		r.Get("/convert/{style}", a.handleConvert)
		r.Post("/convert/{style}", a.handleConvertBatch)
		r.Get("/tokenize", a.handleTokenize)
		r.Get("/pluralize", a.handlePluralize)
		r.Get("/singularize", a.handleSingularize)
		r.Get("/quantify", a.handleQuantify)
	})

	return r
}

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("httpapi: listen: %w", err)
	}
	return serveListener(ctx, ln, handler, logger)
}

func serveListener(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("http server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("httpapi: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpapi: serve: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
