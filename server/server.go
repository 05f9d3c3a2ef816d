// Package server exposes a dashub instance over HTTP: a preview of the
// rendered admin shell, the embedded assets, JSON views of the resolved
// menu, search and settings, and Prometheus metrics.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/xraph/dashub"
	"github.com/xraph/dashub/assets"
	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/search"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config configures a Server.
type Config struct {
	// Addr is the listen address, ":8080" when empty.
	Addr string
	// ShutdownTimeout bounds graceful shutdown, 10s when zero.
	ShutdownTimeout time.Duration
}

// Server serves one Dashub for a fixed set of installed apps.
type Server struct {
	config  Config
	dash    *dashub.Dashub
	apps    []menu.App
	index   *search.Index
	log     logger.Logger
	metrics *metrics
	router  chi.Router
}

// New builds the router. The search index is built once from apps.
func New(d *dashub.Dashub, apps []menu.App, config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}

	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		config:  config,
		dash:    d,
		apps:    apps,
		index:   d.SearchIndex(apps),
		log:     d.Logger().Named("server"),
		metrics: newMetrics(),
	}

	r := chi.NewRouter()
	r.Use(requestID, s.logging, s.metrics.middleware, s.recoverer)

	static := staticPrefix(d.Settings().StaticURL)
	r.Handle(static+"*", http.StripPrefix(static, assets.Handler()))

	r.Get("/", s.handlePreview)
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.handleMenu)
		r.Get("/search", s.handleSearch)
		r.Get("/settings", s.handleSettings)
	})
	r.Handle("/metrics", s.metrics.handler())

	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}

		close(errChan)
	}()

	s.log.Info("server started", logger.String("addr", s.config.Addr))

	select {
	case err, ok := <-errChan:
		if ok {
			return errors.ErrConfigError("http server failed", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.log.Info("starting graceful shutdown", logger.Duration("timeout", s.config.ShutdownTimeout))

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Error("http server shutdown error", logger.Err(err))
		return err
	}

	s.log.Info("graceful shutdown complete")

	return nil
}

// staticPrefix is the local mount point of the assets. Absolute static URLs
// point at a CDN, so the assets are still served locally under /static/.
func staticPrefix(staticURL string) string {
	if !strings.HasPrefix(staticURL, "/") {
		return dashub.DefaultStaticURL
	}

	if !strings.HasSuffix(staticURL, "/") {
		staticURL += "/"
	}

	return staticURL
}
