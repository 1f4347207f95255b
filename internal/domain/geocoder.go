package domain

import "context"

// Geocoder resolves a free-form place query to a coordinate pair.
type Geocoder interface {
	// Geocode looks up a query string. found is false when the provider
	// returned no match; err covers transport and provider failures.
	Geocode(ctx context.Context, query string) (coord Coordinate, found bool, err error)
}
