package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle math.
const earthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance between two
// coordinates in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether the point lies inside the circular geofence
// centered on (centerLat, centerLon). The boundary is inclusive: a point at
// exactly radiusMeters from the center counts as inside. A radius of zero
// degenerates to "must match the center exactly".
func WithinRadius(pointLat, pointLon, centerLat, centerLon, radiusMeters float64) bool {
	return HaversineDistance(pointLat, pointLon, centerLat, centerLon) <= radiusMeters
}
