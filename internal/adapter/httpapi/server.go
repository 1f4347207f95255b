// Package httpapi exposes the persisted alert set over HTTP, together with
// the operational endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
	"github.com/tarangini/coastal-alerts-service/internal/store"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// StoreReadiness adapts a store's Ping into a readiness check.
type StoreReadiness struct {
	Store store.Store
}

func (s StoreReadiness) CheckReadiness(ctx context.Context) error {
	return s.Store.Ping(ctx)
}

// Config carries the serving parameters the handlers need.
type Config struct {
	Addr            string
	ExchangePath    string
	DefaultRadiusKm float64
}

// Server exposes the alert query API plus health, readiness, and metrics.
type Server struct {
	httpServer *http.Server
	cfg        Config
	store      store.Store
	syncer     *store.Syncer
	failures   *observability.FailureLog
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires all routes onto a fresh mux.
func NewServer(cfg Config, st store.Store, syncer *store.Syncer, ready ReadinessChecker, failures *observability.FailureLog, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		cfg:      cfg,
		store:    st,
		syncer:   syncer,
		failures: failures,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /alerts", s.handleListAlerts)
	mux.HandleFunc("GET /alerts/nearby", s.handleNearbyAlerts)
	mux.HandleFunc("POST /reload", s.handleReload)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /last-error", s.handleLastError)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := s.store.ListAll(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("list alerts: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

func (s *Server) handleNearbyAlerts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		s.badRequest(w, "lat must be a number")
		return
	}
	lng, err := strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		s.badRequest(w, "lng must be a number")
		return
	}

	radius := s.cfg.DefaultRadiusKm
	if raw := query.Get("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			s.badRequest(w, "radius_km must be a positive number")
			return
		}
	}

	alerts, err := s.store.ListAll(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("list alerts: %w", err))
		return
	}

	nearby := domain.FilterNearby(alerts, domain.Coordinate{Lat: lat, Lng: lng}, radius)
	s.metrics.NearbyQueries.Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"alerts":    nearby,
		"count":     len(nearby),
		"radius_km": radius,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	records, err := exchange.Read(s.cfg.ExchangePath)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("read exchange file: %w", err))
		return
	}

	result, err := s.syncer.Sync(r.Context(), records)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("sync alerts: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(r.Context()); err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("reset store: %w", err))
		return
	}
	s.logger.Info("store reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleLastError(w http.ResponseWriter, _ *http.Request) {
	failure, ok := s.failures.Last()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, failure)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// fail records the failure and answers with a structured error body.
func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "error", err)
	s.failures.Record(err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
