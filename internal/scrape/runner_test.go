package scrape

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
)

type stubFetcher struct {
	byURL  map[string][]domain.Alert
	errURL string
	calls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]domain.Alert, error) {
	s.calls = append(s.calls, url)
	if url == s.errURL {
		return nil, errors.New("source unavailable")
	}
	return s.byURL[url], nil
}

func testAlert(title string) domain.Alert {
	return domain.Alert{Title: title, Message: "message " + title, Severity: domain.SeverityInfo, Source: "INCOIS"}
}

func newTestRunner(t *testing.T, cfg RunnerConfig, feeds, pages Fetcher) *Runner {
	t.Helper()
	if cfg.ExchangePath == "" {
		cfg.ExchangePath = filepath.Join(t.TempDir(), "alerts.json")
	}
	if cfg.MaxAlerts == 0 {
		cfg.MaxAlerts = 5
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(cfg, feeds, pages, logger, observability.NewMetricsForTesting())
}

func TestRunner_CollectsFeedsThenPages(t *testing.T) {
	feeds := &stubFetcher{byURL: map[string][]domain.Alert{
		"feed1": {testAlert("f1")},
	}}
	pages := &stubFetcher{byURL: map[string][]domain.Alert{
		"page1": {testAlert("p1")},
	}}

	cfg := RunnerConfig{
		Feeds:        []string{"feed1"},
		Pages:        []string{"page1"},
		ExchangePath: filepath.Join(t.TempDir(), "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, feeds, pages)
	require.NoError(t, runner.Run(context.Background()))

	records, err := exchange.Read(cfg.ExchangePath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "f1", records[0].Title)
	assert.Equal(t, "p1", records[1].Title)
}

func TestRunner_SourceFailureDoesNotAbortRun(t *testing.T) {
	feeds := &stubFetcher{
		byURL:  map[string][]domain.Alert{"feed2": {testAlert("f2")}},
		errURL: "feed1",
	}
	pages := &stubFetcher{}

	cfg := RunnerConfig{
		Feeds:        []string{"feed1", "feed2"},
		ExchangePath: filepath.Join(t.TempDir(), "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, feeds, pages)
	require.NoError(t, runner.Run(context.Background()))

	records, err := exchange.Read(cfg.ExchangePath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "f2", records[0].Title)
}

func TestRunner_AllFeedsVisitedDespiteTarget(t *testing.T) {
	feeds := &stubFetcher{byURL: map[string][]domain.Alert{
		"feed1": {testAlert("a"), testAlert("b")},
		"feed2": {testAlert("c")},
	}}
	pages := &stubFetcher{byURL: map[string][]domain.Alert{
		"page1": {testAlert("p")},
	}}

	cfg := RunnerConfig{
		Feeds:     []string{"feed1", "feed2"},
		Pages:     []string{"page1"},
		MaxAlerts: 2,
	}
	runner := newTestRunner(t, cfg, feeds, pages)
	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, []string{"feed1", "feed2"}, feeds.calls,
		"every feed is visited even after the collection target is met")
	assert.Empty(t, pages.calls, "the target only bounds page scraping")
}

func TestRunner_StopsOnceTargetReached(t *testing.T) {
	feeds := &stubFetcher{byURL: map[string][]domain.Alert{
		"feed1": {testAlert("a"), testAlert("b"), testAlert("c")},
	}}
	pages := &stubFetcher{byURL: map[string][]domain.Alert{
		"page1": {testAlert("never")},
	}}

	cfg := RunnerConfig{
		Feeds:     []string{"feed1"},
		Pages:     []string{"page1"},
		MaxAlerts: 3,
	}
	runner := newTestRunner(t, cfg, feeds, pages)
	require.NoError(t, runner.Run(context.Background()))

	assert.Empty(t, pages.calls, "pages must not be fetched after the target is met")
}

func TestRunner_DeduplicatesAcrossSources(t *testing.T) {
	dup := testAlert("same")
	feeds := &stubFetcher{byURL: map[string][]domain.Alert{"feed1": {dup}}}
	pages := &stubFetcher{byURL: map[string][]domain.Alert{"page1": {dup}}}

	cfg := RunnerConfig{
		Feeds:        []string{"feed1"},
		Pages:        []string{"page1"},
		ExchangePath: filepath.Join(t.TempDir(), "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, feeds, pages)
	require.NoError(t, runner.Run(context.Background()))

	records, err := exchange.Read(cfg.ExchangePath)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRunner_FallsBackToSamplesWhenEmpty(t *testing.T) {
	cfg := RunnerConfig{
		Feeds:        []string{"feed1"},
		ExchangePath: filepath.Join(t.TempDir(), "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, &stubFetcher{errURL: "feed1"}, &stubFetcher{})
	require.NoError(t, runner.Run(context.Background()))

	records, err := exchange.Read(cfg.ExchangePath)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "🚨 High Wave Alert - Bay of Bengal", records[0].Title)
}

func TestRunner_WriteFailureIsReturned(t *testing.T) {
	cfg := RunnerConfig{
		ExchangePath: filepath.Join(t.TempDir(), "missing", "nested", "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, &stubFetcher{}, &stubFetcher{})
	assert.Error(t, runner.Run(context.Background()))
}

func TestRunner_CancelledContextStillWritesFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RunnerConfig{
		Feeds:        []string{"feed1"},
		ExchangePath: filepath.Join(t.TempDir(), "alerts.json"),
		MaxAlerts:    5,
	}
	runner := newTestRunner(t, cfg, &stubFetcher{byURL: map[string][]domain.Alert{"feed1": {testAlert("f1")}}}, &stubFetcher{})
	require.NoError(t, runner.Run(ctx))

	records, err := exchange.Read(cfg.ExchangePath)
	require.NoError(t, err)
	assert.NotEmpty(t, records)
}
