package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tarangini/coastal-alerts-service/internal/adapter/nominatim"
	"github.com/tarangini/coastal-alerts-service/internal/config"
	"github.com/tarangini/coastal-alerts-service/internal/domain"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
	"github.com/tarangini/coastal-alerts-service/internal/scrape"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runScrape(ctx, cfg, logger, metrics); err != nil {
		logger.Error("scrape run failed", "error", err)

		// Last resort: leave a valid exchange file behind so downstream
		// consumers never read a stale or missing one.
		fallback := []domain.Alert{scrape.MinimalFallbackAlert(time.Now().UTC())}
		if werr := exchange.Write(cfg.ExchangeFile, fallback); werr != nil {
			logger.Error("fallback exchange write failed", "error", werr)
			os.Exit(1)
		}
		logger.Warn("wrote minimal fallback exchange file", "path", cfg.ExchangeFile)
	}
}

// runScrape assembles the scrape pipeline and executes one run. A panic
// anywhere in the run is converted into an error so the caller can still
// write the fallback file.
func runScrape(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scrape run panicked: %v", r)
		}
	}()

	sources, err := config.LoadSources(cfg.SourcesFile)
	if err != nil {
		return err
	}

	keywords := domain.DefaultSeverityKeywords()
	if len(sources.EmergencyKeywords) > 0 {
		keywords.Emergency = sources.EmergencyKeywords
	}
	if len(sources.WarningKeywords) > 0 {
		keywords.Warning = sources.WarningKeywords
	}

	var geocoder domain.Geocoder
	if cfg.GeocodeEnabled {
		client := nominatim.NewClient(cfg.GeocoderBaseURL, cfg.GeocodeTimeout, metrics, logger)
		geocoder = nominatim.NewCachedGeocoder(client, cfg.GeocodeCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("geocoding enabled", "cache_size", cfg.GeocodeCacheSize, "timeout", cfg.GeocodeTimeout)
	} else {
		logger.Info("geocoding disabled")
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	assembler := scrape.NewAssembler(keywords, domain.DefaultLocationPatterns(), geocoder, cfg.GeocodeCountry, "INCOIS", logger)
	feeds := scrape.NewFeedSource(httpClient, assembler, logger)
	pages := scrape.NewPageSource(httpClient, assembler, cfg.PageAlertLimit, logger)

	runner := scrape.NewRunner(scrape.RunnerConfig{
		Feeds:        sources.Feeds,
		Pages:        sources.Pages,
		FeedDelay:    cfg.FeedDelay,
		PageDelay:    cfg.PageDelay,
		MaxAlerts:    cfg.MaxAlerts,
		ExchangePath: cfg.ExchangeFile,
	}, feeds, pages, logger, metrics)

	return runner.Run(ctx)
}
