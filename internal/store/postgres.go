package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

// psql builds queries with Postgres $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore implements Store on a Postgres database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and ensures the schema exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// ReplaceAll deletes every row and reinserts alerts inside one transaction,
// so concurrent readers see either the old set or the new set, never a
// partial state.
func (s *PostgresStore) ReplaceAll(ctx context.Context, alerts []domain.Alert) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM alerts"); err != nil {
		return fmt.Errorf("clear alerts: %w", err)
	}

	for _, a := range alerts {
		var lat, lng any
		if a.Coordinate != nil {
			lat = a.Coordinate.Lat
			lng = a.Coordinate.Lng
		}

		query, args, err := psql.Insert("alerts").
			Columns("title", "message", "severity", "source", "lat", "lng", "time").
			Values(a.Title, a.Message, string(a.Severity), a.Source, lat, lng, a.Time).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert alert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// ListAll returns all alerts ordered by time descending; rows inserted in
// the same sync share a timestamp, so id keeps their input order stable.
func (s *PostgresStore) ListAll(ctx context.Context) ([]domain.Alert, error) {
	query, args, err := psql.Select("title", "message", "severity", "source", "lat", "lng", "time").
		From("alerts").
		OrderBy("time DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var (
			a        domain.Alert
			severity string
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&a.Title, &a.Message, &severity, &a.Source, &lat, &lng, &a.Time); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.Severity = domain.ParseSeverity(severity)
		if lat.Valid && lng.Valid {
			a.Coordinate = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return alerts, nil
}

// Reset drops the alerts table and recreates it empty.
func (s *PostgresStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS alerts"); err != nil {
		return fmt.Errorf("drop alerts: %w", err)
	}
	return s.migrate(ctx)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
