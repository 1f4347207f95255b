package domain

import "math"

// FilterNearby returns the alerts within radiusKm of origin, each annotated
// with its haversine distance rounded to two decimals. Alerts without a
// coordinate are excluded from consideration. Input order is preserved; no
// re-sort by distance happens here.
func FilterNearby(alerts []Alert, origin Coordinate, radiusKm float64) []NearbyAlert {
	nearby := make([]NearbyAlert, 0)

	for _, alert := range alerts {
		if alert.Coordinate == nil {
			continue
		}
		dist := HaversineKm(origin, *alert.Coordinate)
		if dist > radiusKm {
			continue
		}
		nearby = append(nearby, NearbyAlert{
			Alert:      alert,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}

	return nearby
}
