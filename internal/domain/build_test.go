package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlert_SeverityMarkers(t *testing.T) {
	tests := []struct {
		severity  Severity
		wantTitle string
	}{
		{SeverityEmergency, "🚨 Tsunami watch"},
		{SeverityWarning, "⚠️ Tsunami watch"},
		{SeverityInfo, "Tsunami watch"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			alert := NewAlert("Tsunami watch", "body", tt.severity, "INCOIS", nil)
			assert.Equal(t, tt.wantTitle, alert.Title)
		})
	}
}

func TestNewAlert_MessageFallsBackToTitle(t *testing.T) {
	alert := NewAlert("High tide advisory", "", SeverityWarning, "INCOIS", nil)
	assert.Equal(t, "High tide advisory", alert.Message) // marker stays off the message
	assert.Equal(t, "⚠️ High tide advisory", alert.Title)
}

func TestNewAlert_SetsBuildTime(t *testing.T) {
	fixed := time.Date(2025, time.November, 3, 9, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	t.Cleanup(func() { SetClock(nil) })

	alert := NewAlert("t", "m", SeverityInfo, "INCOIS", nil)
	assert.Equal(t, fixed, alert.Time)
}

func TestNewAlert_Coordinate(t *testing.T) {
	coord := &Coordinate{Lat: 15.0, Lng: 87.0}
	alert := NewAlert("t", "m", SeverityInfo, "INCOIS", coord)
	require.NotNil(t, alert.Coordinate)
	assert.Equal(t, *coord, *alert.Coordinate)

	alert = NewAlert("t", "m", SeverityInfo, "INCOIS", nil)
	assert.Nil(t, alert.Coordinate)
}
