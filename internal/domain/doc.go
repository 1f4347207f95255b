// Package domain models disaster alerts published by INCOIS, the Indian
// National Centre for Ocean Information Services.
//
// # Data Source
//
// Alerts originate as free-form text: RSS feed entries and scraped portal
// pages from https://incois.gov.in (ocean state forecasts, tsunami and high
// wave bulletins, announcements). The scraper normalizes each fragment,
// classifies its severity, extracts candidate place names, and geocodes the
// first one.
//
// # Severity
//
// Three ordinal levels: info < warning < emergency. Classification is a
// keyword-precedence scan: the emergency keyword list is checked first and
// the first case-insensitive substring hit wins; only if none match is the
// warning list scanned; no match in either yields info. Keyword lists are
// immutable configuration values (see [DefaultSeverityKeywords]), not
// classifier state.
//
// Titles carry a severity marker prefix: "🚨 " for emergency, "⚠️ " for
// warning, none for info. The markers survive from the original portal
// presentation and downstream consumers key off them.
//
// # Locations
//
// Extraction applies an ordered pattern list (coastal names, named seas,
// district references, coastal states, major ports, "along/off <name>
// coast" phrasing). Matches shorter than 3 characters are dropped and the
// result keeps first-seen order with duplicates removed. Only the first
// extracted location is geocoded; later candidates are discarded on
// purpose; a fragment spanning several coastal regions still yields a
// single representative coordinate.
//
// Named water bodies bypass external geocoding entirely: Bay of Bengal,
// Arabian Sea, and Indian Ocean resolve to fixed representative coordinates
// because lookup services place them poorly or not at all.
//
// # Deduplication
//
// Cross-source duplicates are collapsed by the lowercase of the first 100
// characters of the message; the first occurrence wins. Two distinct alerts
// sharing a long common prefix collapse into one, accepted as lossy.
package domain
