package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// waterBodyOverrides maps named seas to fixed representative coordinates.
// Lookup services place open water poorly, so these are resolved before any
// external call. Checked by case-insensitive substring containment.
var waterBodyOverrides = []struct {
	name  string
	coord Coordinate
}{
	{"bay of bengal", Coordinate{Lat: 15.0, Lng: 87.0}},
	{"arabian sea", Coordinate{Lat: 15.0, Lng: 68.0}},
	{"indian ocean", Coordinate{Lat: 10.0, Lng: 75.0}},
}

// ResolveLocation resolves a place name to a coordinate. Water body
// overrides win; anything else is looked up as "<location>, <country>"
// through the geocoder. Failure, timeout, and no-match all yield nil: a
// missing coordinate is a normal outcome, never an error, and there is no
// retry. A nil geocoder disables external lookup entirely.
func ResolveLocation(ctx context.Context, location, country string, geocoder Geocoder, logger *slog.Logger) *Coordinate {
	lower := strings.ToLower(location)
	for _, wb := range waterBodyOverrides {
		if strings.Contains(lower, wb.name) {
			coord := wb.coord
			return &coord
		}
	}

	if geocoder == nil {
		return nil
	}

	query := fmt.Sprintf("%s, %s", location, country)
	coord, found, err := geocoder.Geocode(ctx, query)
	if err != nil {
		logger.Debug("geocoding failed", "location", location, "error", err)
		return nil
	}
	if !found {
		return nil
	}
	return &coord
}
