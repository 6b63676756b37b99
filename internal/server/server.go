package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"agencysite/assets"
	"agencysite/internal/config"
	"agencysite/internal/contact"
	"agencysite/internal/content"
	"agencysite/internal/handlers"
	"agencysite/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server owns the HTTP listener and the background pieces it starts.
type Server struct {
	http            *http.Server
	limiter         *httpx.RateLimitMiddleware
	logger          logrus.FieldLogger
	shutdownTimeout time.Duration
}

// New wires the site around a loaded catalog.
func New(cfg config.Config, catalog *content.Catalog, logger logrus.FieldLogger) (*Server, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(prometheus.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	limiter := httpx.NewRateLimitMiddleware(cfg.Contact.RateRPS, cfg.Contact.RateBurst)
	router, err := NewRouter(cfg, catalog, logger, reg, limiter)
	if err != nil {
		limiter.Stop()
		return nil, err
	}

	return &Server{
		http: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		limiter:         limiter,
		logger:          logger,
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}, nil
}

// NewRouter builds the full route tree: HTML pages, the JSON API under
// /api/v1, static assets and /metrics.
func NewRouter(
	cfg config.Config,
	catalog *content.Catalog,
	logger logrus.FieldLogger,
	reg *prometheus.Registry,
	limiter *httpx.RateLimitMiddleware,
) (http.Handler, error) {
	static, err := fs.Sub(assets.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	contactService := contact.NewService(logger, handlers.ProjectOptions(catalog.Services()))
	pages := handlers.NewPages(catalog, contactService, limiter, logger, reg, handlers.Options{
		SiteName: cfg.SiteName,
		Locale:   cfg.Locale,

		ProjectCategories: cfg.PortfolioCategories,
	})
	contentHandler := content.NewHTTPHandler(content.NewLookup(catalog), cfg.Locale)
	contactHandler := contact.NewHTTPHandler(contactService)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(logger))
	r.Use(httpx.RecoveryMiddleware(logger))
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	r.Use(httpx.NewMetrics(reg).Middleware)
	r.Use(httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(httpx.CORSMiddleware(cfg.CORSOrigins))
		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
		})
		contentHandler.Routes(api)
		api.Group(func(limited chi.Router) {
			limited.Use(limiter.Middleware)
			contactHandler.Routes(limited)
		})
	})

	pages.Routes(r)
	return r, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.http.Addr).Info("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
