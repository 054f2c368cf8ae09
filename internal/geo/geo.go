package geo

import (
	"math"

	"github.com/Berley24/chamadaaaa/internal/models"
)

const earthRadiusM = 6371000.0

// Distance returns the great-circle distance between a and b in meters,
// using the haversine formula on a spherical earth.
func Distance(a, b models.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}
