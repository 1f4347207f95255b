// Package scrape turns INCOIS feeds and portal pages into alert records
// and hands them to the exchange file.
package scrape

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

// Assembler composes the per-fragment pipeline: classify severity, extract
// locations, geocode the first one, build the alert.
type Assembler struct {
	keywords domain.SeverityKeywords
	patterns []*regexp.Regexp
	geocoder domain.Geocoder
	country  string
	source   string
	logger   *slog.Logger
}

// NewAssembler creates an Assembler. Pass a nil geocoder to disable
// external lookups; water body overrides still resolve.
func NewAssembler(keywords domain.SeverityKeywords, patterns []*regexp.Regexp, geocoder domain.Geocoder, country, source string, logger *slog.Logger) *Assembler {
	return &Assembler{
		keywords: keywords,
		patterns: patterns,
		geocoder: geocoder,
		country:  country,
		source:   source,
		logger:   logger,
	}
}

// Assemble builds an alert from a normalized title/body pair. Severity and
// locations are derived from the combined text; only the first extracted
// location is geocoded.
func (a *Assembler) Assemble(ctx context.Context, title, body string) domain.Alert {
	fullText := strings.TrimSpace(title + " " + body)

	severity := domain.ClassifySeverity(fullText, a.keywords)

	var coord *domain.Coordinate
	if locations := domain.ExtractLocations(fullText, a.patterns); len(locations) > 0 {
		coord = domain.ResolveLocation(ctx, locations[0], a.country, a.geocoder, a.logger)
	}

	return domain.NewAlert(title, body, severity, a.source, coord)
}
