package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scraper and the serving layer.
type Metrics struct {
	AlertsCollected *prometheus.CounterVec // labels: kind={feed,page}
	SourceFailures  *prometheus.CounterVec // labels: kind={feed,page}
	AlertsDeduped   prometheus.Counter
	SampleFallbacks prometheus.Counter
	ScrapeDuration  prometheus.Histogram
	ScrapeRunning   prometheus.Gauge

	// Store sync metrics.
	SyncInserted prometheus.Counter
	SyncSkipped  prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge

	// Serving metrics.
	NearbyQueries prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.AlertsCollected,
		m.SourceFailures,
		m.AlertsDeduped,
		m.SampleFallbacks,
		m.ScrapeDuration,
		m.ScrapeRunning,
		m.SyncInserted,
		m.SyncSkipped,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
		m.NearbyQueries,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		AlertsCollected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "alerts_collected_total",
			Help:      "Alerts extracted from sources, by source kind.",
		}, []string{"kind"}),
		SourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "source_failures_total",
			Help:      "Sources that failed to yield content, by source kind.",
		}, []string{"kind"}),
		AlertsDeduped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "alerts_deduplicated_total",
			Help:      "Alerts dropped as duplicates of an earlier message prefix.",
		}),
		SampleFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "sample_fallbacks_total",
			Help:      "Runs that substituted the fixed sample alert set.",
		}),
		ScrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coastal_alerts",
			Name:      "scrape_duration_seconds",
			Help:      "Duration of a complete ingestion run.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
		}),
		ScrapeRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "coastal_alerts",
			Name:      "scrape_running",
			Help:      "1 while an ingestion run is active, 0 otherwise.",
		}),
		SyncInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "sync_inserted_total",
			Help:      "Exchange records inserted by store syncs.",
		}),
		SyncSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "sync_skipped_total",
			Help:      "Exchange records skipped by store syncs with a reason.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coastal_alerts",
			Name:      "geocode_api_duration_seconds",
			Help:      "Geocoding API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "coastal_alerts",
			Name:      "geocode_enabled",
			Help:      "1 when external geocoding is enabled, 0 otherwise.",
		}),
		NearbyQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "coastal_alerts",
			Name:      "nearby_queries_total",
			Help:      "Proximity queries served.",
		}),
	}
}
