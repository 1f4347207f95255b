package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
)

// Fetcher pulls alerts from one source URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.Alert, error)
}

// RunnerConfig holds the source lists and collection limits for one run.
type RunnerConfig struct {
	Feeds        []string
	Pages        []string
	FeedDelay    time.Duration
	PageDelay    time.Duration
	MaxAlerts    int
	ExchangePath string
}

// Runner drives one scrape pass: feeds first, then pages, sequentially with
// a pacing delay after each source. Individual source failures are absorbed;
// only a failure to write the exchange file fails the run.
type Runner struct {
	cfg     RunnerConfig
	feeds   Fetcher
	pages   Fetcher
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewRunner(cfg RunnerConfig, feeds, pages Fetcher, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{
		cfg:     cfg,
		feeds:   feeds,
		pages:   pages,
		clock:   clockwork.NewRealClock(),
		logger:  logger,
		metrics: metrics,
	}
}

// WithClock swaps the time source, for tests.
func (r *Runner) WithClock(c clockwork.Clock) *Runner {
	r.clock = c
	return r
}

// Run collects alerts from every feed, then from pages until the collection
// target is reached, deduplicates them, falls back to the sample set when
// nothing was collected, and writes the exchange file. Cancelling the
// context stops collection but the file is still written.
func (r *Runner) Run(ctx context.Context) error {
	start := r.clock.Now()
	r.metrics.ScrapeRunning.Set(1)
	defer r.metrics.ScrapeRunning.Set(0)

	var collected []domain.Alert

	// Every feed is visited; the collection target only bounds page
	// scraping below.
	for _, url := range r.cfg.Feeds {
		collected = append(collected, r.fetchOne(ctx, r.feeds, "feed", url)...)
		if !r.pause(ctx, r.cfg.FeedDelay) {
			break
		}
	}

	for _, url := range r.cfg.Pages {
		if len(collected) >= r.cfg.MaxAlerts {
			break
		}
		collected = append(collected, r.fetchOne(ctx, r.pages, "page", url)...)
		if !r.pause(ctx, r.cfg.PageDelay) {
			break
		}
	}

	result := domain.Deduplicate(collected)
	r.metrics.AlertsDeduped.Add(float64(result.Skipped))

	alerts := result.Alerts
	if len(alerts) == 0 {
		r.logger.Warn("no alerts collected, falling back to sample set")
		r.metrics.SampleFallbacks.Inc()
		alerts = SampleAlerts(r.clock.Now().UTC())
	}

	if err := exchange.Write(r.cfg.ExchangePath, alerts); err != nil {
		return fmt.Errorf("write exchange file: %w", err)
	}

	r.metrics.ScrapeDuration.Observe(r.clock.Since(start).Seconds())
	r.logger.Info("scrape run complete",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"written", len(alerts),
		"path", r.cfg.ExchangePath)
	return nil
}

// fetchOne pulls from a single source, recording failures without
// propagating them.
func (r *Runner) fetchOne(ctx context.Context, fetcher Fetcher, kind, url string) []domain.Alert {
	alerts, err := fetcher.Fetch(ctx, url)
	if err != nil {
		r.logger.Warn("source failed", "kind", kind, "url", url, "error", err)
		r.metrics.SourceFailures.WithLabelValues(kind).Inc()
		return nil
	}
	r.metrics.AlertsCollected.WithLabelValues(kind).Add(float64(len(alerts)))
	return alerts
}

// pause sleeps for the pacing delay, returning false when the context is
// cancelled first.
func (r *Runner) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-r.clock.After(d):
		return true
	}
}
