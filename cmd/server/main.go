package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tarangini/coastal-alerts-service/internal/adapter/httpapi"
	"github.com/tarangini/coastal-alerts-service/internal/config"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
	"github.com/tarangini/coastal-alerts-service/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	failures := observability.NewFailureLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close() //nolint:errcheck // shutdown path

	syncer := store.NewSyncer(st, logger, metrics)

	// Best-effort startup sync: a missing or broken exchange file leaves the
	// store as it was and is surfaced through /last-error.
	if records, err := exchange.Read(cfg.ExchangeFile); err != nil {
		logger.Warn("startup sync skipped", "error", err)
		failures.Record(err)
	} else if _, err := syncer.Sync(ctx, records); err != nil {
		logger.Error("startup sync failed", "error", err)
		failures.Record(err)
	}

	srv := httpapi.NewServer(httpapi.Config{
		Addr:            cfg.HTTPAddr,
		ExchangePath:    cfg.ExchangeFile,
		DefaultRadiusKm: cfg.DefaultRadiusKm,
	}, st, syncer, httpapi.StoreReadiness{Store: st}, failures, metrics, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newStore selects Postgres when DATABASE_URL is set, in-memory otherwise.
func newStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory store")
		return store.NewMemoryStore(), nil
	}
	logger.Info("using postgres store")
	return store.NewPostgresStore(ctx, cfg.DatabaseURL)
}
