package domain

import "strings"

// dedupeKeyLen is the number of leading message characters forming the
// dedup key.
const dedupeKeyLen = 100

// DedupeResult is the outcome of collapsing duplicate alerts.
type DedupeResult struct {
	Alerts    []Alert
	Processed int // alerts kept
	Skipped   int // alerts dropped as duplicates
}

// Deduplicate collapses alerts sharing a message-prefix key, keeping the
// first occurrence of each key. The key is the lowercase of the first 100
// characters of the message, so two distinct alerts with a long common
// prefix collapse into one. This is the single point of cross-source
// duplicate resolution and it is intentionally lossy.
func Deduplicate(alerts []Alert) DedupeResult {
	result := DedupeResult{Alerts: make([]Alert, 0, len(alerts))}
	seen := map[string]struct{}{}

	for _, alert := range alerts {
		key := dedupeKey(alert.Message)
		if _, ok := seen[key]; ok {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}
		result.Alerts = append(result.Alerts, alert)
		result.Processed++
	}

	return result
}

func dedupeKey(message string) string {
	runes := []rune(message)
	if len(runes) > dedupeKeyLen {
		runes = runes[:dedupeKeyLen]
	}
	return strings.ToLower(string(runes))
}
