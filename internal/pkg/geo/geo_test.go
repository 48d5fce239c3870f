package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_KnownPoints(t *testing.T) {
	// Jakarta Monas to Jakarta Kota station, roughly 4.5 km.
	d := HaversineDistance(-6.1754, 106.8272, -6.1376, 106.8133)
	assert.InDelta(t, 4480, d, 200)
}

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(-6.2, 106.8, -6.2, 106.8)
	assert.Equal(t, 0.0, d)
}

func TestWithinRadius(t *testing.T) {
	centerLat, centerLon := -6.2000, 106.8000

	// About 111 meters north of center (1e-3 degrees of latitude).
	nearLat := centerLat + 0.001

	cases := []struct {
		name   string
		lat    float64
		lon    float64
		radius float64
		want   bool
	}{
		{"center inside any positive radius", centerLat, centerLon, 1, true},
		{"center inside zero radius", centerLat, centerLon, 0, true},
		{"near point inside wide radius", nearLat, centerLon, 200, true},
		{"near point outside tight radius", nearLat, centerLon, 50, false},
		{"far point outside", centerLat + 0.1, centerLon, 1000, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WithinRadius(c.lat, c.lon, centerLat, centerLon, c.radius)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWithinRadius_BoundaryInclusive(t *testing.T) {
	centerLat, centerLon := -6.2000, 106.8000
	pointLat := centerLat + 0.001

	d := HaversineDistance(pointLat, centerLon, centerLat, centerLon)

	// Distance exactly equal to the radius must count as inside.
	assert.True(t, WithinRadius(pointLat, centerLon, centerLat, centerLon, d))
	assert.False(t, WithinRadius(pointLat, centerLon, centerLat, centerLon, d-0.01))
}
