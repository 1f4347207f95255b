package store

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

// SkipReason explains why one input record was rejected, keyed by its index
// in the exchange array.
type SkipReason struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// SyncResult summarizes one sync pass.
type SyncResult struct {
	Inserted int          `json:"inserted"`
	Skipped  int          `json:"skipped"`
	Reasons  []SkipReason `json:"skipped_details,omitempty"`
}

// Syncer reconciles exchange records with the store by full replacement.
type Syncer struct {
	store   Store
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewSyncer creates a Syncer using the real clock.
func NewSyncer(store Store, logger *slog.Logger, metrics *observability.Metrics) *Syncer {
	return &Syncer{
		store:   store,
		clock:   clockwork.NewRealClock(),
		logger:  logger,
		metrics: metrics,
	}
}

// WithClock swaps the time source, for tests.
func (s *Syncer) WithClock(c clockwork.Clock) *Syncer {
	s.clock = c
	return s
}

// Sync validates records in order and replaces the persisted set with the
// accepted ones. Each record is either accepted or rejected with a reason;
// a rejection never aborts the batch. Every accepted record gets the sync
// time as its persisted timestamp; the original alert-generation time does
// not survive this boundary.
func (s *Syncer) Sync(ctx context.Context, records []exchange.Record) (SyncResult, error) {
	now := s.clock.Now().UTC()

	var result SyncResult
	alerts := make([]domain.Alert, 0, len(records))

	for idx, rec := range records {
		alert, reason := buildAlert(rec, now)
		if reason != "" {
			result.Skipped++
			result.Reasons = append(result.Reasons, SkipReason{Index: idx, Reason: reason})
			s.logger.Warn("skipping exchange record", "index", idx, "reason", reason)
			continue
		}
		alerts = append(alerts, alert)
	}

	if err := s.store.ReplaceAll(ctx, alerts); err != nil {
		return SyncResult{}, fmt.Errorf("replace alerts: %w", err)
	}

	result.Inserted = len(alerts)
	s.metrics.SyncInserted.Add(float64(result.Inserted))
	s.metrics.SyncSkipped.Add(float64(result.Skipped))
	s.logger.Info("store sync complete", "inserted", result.Inserted, "skipped", result.Skipped)
	return result, nil
}

// buildAlert converts one exchange record into an alert, returning a
// non-empty reason instead when the record is invalid.
func buildAlert(rec exchange.Record, now time.Time) (domain.Alert, string) {
	if rec.Title == "" || rec.Message == "" {
		return domain.Alert{}, "missing title/message"
	}

	var coord *domain.Coordinate
	if rec.Lat != nil || rec.Lng != nil {
		lat, errLat := exchange.CoerceFloat(rec.Lat)
		lng, errLng := exchange.CoerceFloat(rec.Lng)
		if errLat != nil || errLng != nil {
			return domain.Alert{}, "invalid lat/lng"
		}
		coord = &domain.Coordinate{Lat: lat, Lng: lng}
	}

	severity := rec.Severity
	if severity == "" {
		severity = string(domain.SeverityInfo)
	}
	source := rec.Source
	if source == "" {
		source = "unknown"
	}

	return domain.Alert{
		Title:      rec.Title,
		Message:    rec.Message,
		Severity:   domain.ParseSeverity(severity),
		Source:     source,
		Coordinate: coord,
		Time:       now,
	}, ""
}
