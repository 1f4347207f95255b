package domain

// Severity marker prefixes applied to alert titles.
const (
	emergencyMarker = "🚨 "
	warningMarker   = "⚠️ "
)

// NewAlert composes an Alert from a normalized title/body pair, its
// classified severity, and an optional resolved coordinate. The title gets
// a severity marker prefix (info stays unprefixed), the message falls back
// to the title when no separate body exists, and the timestamp is the build
// time, not the publication time of the source content.
func NewAlert(title, body string, severity Severity, source string, coord *Coordinate) Alert {
	message := body
	if message == "" {
		message = title // fallback uses the undecorated title
	}

	switch severity {
	case SeverityEmergency:
		title = emergencyMarker + title
	case SeverityWarning:
		title = warningMarker + title
	}

	return Alert{
		Title:      title,
		Message:    message,
		Severity:   severity,
		Source:     source,
		Coordinate: coord,
		Time:       clock.Now().UTC(),
	}
}
