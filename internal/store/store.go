// Package store persists the alert set and reconciles it with the exchange
// file.
//
// The persisted set is replaced wholesale on every sync; there is no
// update-in-place and no historical retention. Both implementations make
// the replace atomic from a reader's point of view: Postgres wraps
// delete-and-reinsert in a single transaction, the memory store swaps the
// backing slice under one lock. Readers never observe a half-repopulated
// set.
package store

import (
	"context"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

// Store is the persistence boundary for alerts.
type Store interface {
	// ReplaceAll atomically replaces the persisted set with alerts.
	ReplaceAll(ctx context.Context, alerts []domain.Alert) error

	// ListAll returns the persisted set ordered by time descending, with
	// insertion order as tiebreaker.
	ListAll(ctx context.Context) ([]domain.Alert, error)

	// Reset destroys and recreates the storage from empty.
	Reset(ctx context.Context) error

	// Ping reports whether the backing storage is reachable.
	Ping(ctx context.Context) error

	Close() error
}
