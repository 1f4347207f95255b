package domain

import "time"

// Severity is the ordinal urgency level of an alert.
type Severity string

const (
	SeverityInfo      Severity = "info"
	SeverityWarning   Severity = "warning"
	SeverityEmergency Severity = "emergency"
)

// ParseSeverity maps a raw string to a known severity, defaulting to info.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityWarning, SeverityEmergency:
		return Severity(s)
	default:
		return SeverityInfo
	}
}

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Alert is the unit of the domain: one structured, optionally geolocated
// disaster notice. Coordinate is nil when no location could be resolved;
// lat and lng are never present one without the other.
type Alert struct {
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	Severity   Severity    `json:"severity"`
	Source     string      `json:"source"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Time       time.Time   `json:"time"`
}

// NearbyAlert decorates an Alert with its great-circle distance from a
// query point.
type NearbyAlert struct {
	Alert
	DistanceKm float64 `json:"distance_km"`
}
