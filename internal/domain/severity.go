package domain

import "strings"

// SeverityKeywords holds the ordered keyword lists driving classification.
// Emergency keywords take precedence over warning keywords; within a list,
// earlier entries are checked first. The lists are configuration data;
// swapping them never changes the algorithm.
type SeverityKeywords struct {
	Emergency []string
	Warning   []string
}

// DefaultSeverityKeywords returns the keyword sets tuned for INCOIS ocean
// hazard bulletins.
func DefaultSeverityKeywords() SeverityKeywords {
	return SeverityKeywords{
		Emergency: []string{
			"tsunami", "cyclone", "severe cyclone", "very severe cyclone",
			"super cyclone", "red alert", "emergency", "evacuation",
			"extreme", "dangerous", "life threatening", "catastrophic",
			"super cyclonic storm", "extremely severe",
		},
		Warning: []string{
			"warning", "heavy rain", "flood", "high tide", "storm surge",
			"orange alert", "yellow alert", "caution", "advisory",
			"rough sea", "high waves", "strong wind", "depression",
			"cyclonic storm", "deep depression",
		},
	}
}

// ClassifySeverity maps normalized text to a severity level. Matching is
// case-insensitive substring containment; the first emergency hit returns
// immediately, the warning list is only scanned when no emergency keyword
// matched, and no hit in either list yields info. Pure function: the same
// text always classifies the same way.
func ClassifySeverity(text string, keywords SeverityKeywords) Severity {
	lower := strings.ToLower(text)

	for _, kw := range keywords.Emergency {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return SeverityEmergency
		}
	}
	for _, kw := range keywords.Warning {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return SeverityWarning
		}
	}

	return SeverityInfo
}
