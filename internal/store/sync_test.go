package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
	"github.com/tarangini/coastal-alerts-service/internal/exchange"
	"github.com/tarangini/coastal-alerts-service/internal/observability"
)

var syncTime = time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)

func testSyncer(t *testing.T) (*Syncer, *MemoryStore) {
	t.Helper()
	st := NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	syncer := NewSyncer(st, logger, observability.NewMetricsForTesting()).
		WithClock(clockwork.NewFakeClockAt(syncTime))
	return syncer, st
}

func validRecord(title string) exchange.Record {
	return exchange.Record{
		Title:    title,
		Message:  "message for " + title,
		Severity: "warning",
		Source:   "INCOIS",
		Lat:      13.0,
		Lng:      80.0,
		Time:     "2025-11-01T00:00:00Z",
	}
}

func TestSync_RoundTrip(t *testing.T) {
	syncer, st := testSyncer(t)

	records := []exchange.Record{validRecord("a"), validRecord("b"), validRecord("c")}
	result, err := syncer.Sync(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Inserted)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Reasons)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}

func TestSync_AssignsSyncTimeNotRecordTime(t *testing.T) {
	syncer, st := testSyncer(t)

	_, err := syncer.Sync(context.Background(), []exchange.Record{validRecord("a")})
	require.NoError(t, err)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, syncTime, alerts[0].Time)
}

func TestSync_SkipsMissingTitleOrMessage(t *testing.T) {
	syncer, _ := testSyncer(t)

	records := []exchange.Record{
		{Title: "", Message: "m"},
		{Title: "t", Message: ""},
		validRecord("ok"),
	}
	result, err := syncer.Sync(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Reasons, 2)
	assert.Equal(t, 0, result.Reasons[0].Index)
	assert.Equal(t, "missing title/message", result.Reasons[0].Reason)
	assert.Equal(t, 1, result.Reasons[1].Index)
}

func TestSync_RejectsHalfCoordinate(t *testing.T) {
	syncer, st := testSyncer(t)

	rec := validRecord("half")
	rec.Lng = nil // lat present without lng

	result, err := syncer.Sync(context.Background(), []exchange.Record{rec, validRecord("ok")})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Reasons, 1)
	assert.Equal(t, 0, result.Reasons[0].Index)
	assert.Equal(t, "invalid lat/lng", result.Reasons[0].Reason)

	// The rest of the batch is unaffected.
	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestSync_RejectsNonNumericCoordinate(t *testing.T) {
	syncer, _ := testSyncer(t)

	rec := validRecord("bad")
	rec.Lat = "north"

	result, err := syncer.Sync(context.Background(), []exchange.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "invalid lat/lng", result.Reasons[0].Reason)
}

func TestSync_CoercesStringCoordinates(t *testing.T) {
	syncer, st := testSyncer(t)

	rec := validRecord("stringy")
	rec.Lat = "13.0827"
	rec.Lng = "80.2707"

	result, err := syncer.Sync(context.Background(), []exchange.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, alerts[0].Coordinate)
	assert.Equal(t, 13.0827, alerts[0].Coordinate.Lat)
}

func TestSync_NullCoordinatesAccepted(t *testing.T) {
	syncer, st := testSyncer(t)

	rec := validRecord("nocoord")
	rec.Lat = nil
	rec.Lng = nil

	result, err := syncer.Sync(context.Background(), []exchange.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Nil(t, alerts[0].Coordinate)
}

func TestSync_DefaultsSeverityAndSource(t *testing.T) {
	syncer, st := testSyncer(t)

	result, err := syncer.Sync(context.Background(), []exchange.Record{
		{Title: "t", Message: "m"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityInfo, alerts[0].Severity)
	assert.Equal(t, "unknown", alerts[0].Source)
}

func TestSync_ReplacesPreviousSet(t *testing.T) {
	syncer, st := testSyncer(t)

	_, err := syncer.Sync(context.Background(), []exchange.Record{validRecord("old1"), validRecord("old2")})
	require.NoError(t, err)

	_, err = syncer.Sync(context.Background(), []exchange.Record{validRecord("new")})
	require.NoError(t, err)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "new", alerts[0].Title)
}

func TestSync_EmptyInputClearsStore(t *testing.T) {
	syncer, st := testSyncer(t)

	_, err := syncer.Sync(context.Background(), []exchange.Record{validRecord("a")})
	require.NoError(t, err)

	result, err := syncer.Sync(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
