package domain

import "regexp"

// minLocationLen discards fragments like "Go" or "At" that the broader
// patterns occasionally capture.
const minLocationLen = 3

// DefaultLocationPatterns returns the ordered pattern list for Indian
// coastal regions. Order matters: matches are collected pattern by pattern,
// so named seas rank behind explicit "<name> coast" phrasing but ahead of
// district and port references.
func DefaultLocationPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b([A-Za-z][a-z]+ coast)\b`),
		regexp.MustCompile(`(?i)\b(Bay of Bengal|Arabian Sea|Indian Ocean)\b`),
		regexp.MustCompile(`(?i)\b([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)*)\s+district\b`),
		regexp.MustCompile(`(?i)\b(Andhra Pradesh|Tamil Nadu|Odisha|West Bengal|Karnataka|Kerala|Gujarat|Maharashtra|Goa)\b`),
		regexp.MustCompile(`(?i)\b(Chennai|Mumbai|Kolkata|Visakhapatnam|Cochin|Mangalore|Paradip|Haldia)\b`),
		regexp.MustCompile(`(?i)\b([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)*)\s+(?:port|harbour)\b`),
		regexp.MustCompile(`(?i)(?:along|off)\s+([A-Za-z][a-z]+(?:\s+[A-Za-z][a-z]+)*)\s+coast`),
	}
}

// ExtractLocations recovers candidate place names from normalized text.
// Each pattern contributes all of its non-overlapping matches in order of
// appearance, patterns are applied in list order, and the result is
// deduplicated keeping first-seen order. No relevance ranking is implied
// beyond pattern order.
func ExtractLocations(text string, patterns []*regexp.Regexp) []string {
	var locations []string
	seen := map[string]struct{}{}

	for _, pattern := range patterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			location := match[1]
			if len(location) < minLocationLen {
				continue
			}
			if _, ok := seen[location]; ok {
				continue
			}
			seen[location] = struct{}{}
			locations = append(locations, location)
		}
	}

	return locations
}
