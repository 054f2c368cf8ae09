package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Berley24/chamadaaaa/internal/models"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := models.Coordinate{Lat: -23.5505, Lng: -46.6333}
	assert.Zero(t, Distance(p, p))
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := models.Coordinate{Lat: -23.5505, Lng: -46.6333}
	b := models.Coordinate{Lat: -22.9068, Lng: -43.1729}
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceKnownValues(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	a := models.Coordinate{Lat: 0, Lng: 0}
	b := models.Coordinate{Lat: 1, Lng: 0}
	assert.InDelta(t, 111195, Distance(a, b), 10)

	// São Paulo to Rio de Janeiro, roughly 361 km.
	sp := models.Coordinate{Lat: -23.5505, Lng: -46.6333}
	rj := models.Coordinate{Lat: -22.9068, Lng: -43.1729}
	assert.InDelta(t, 361000, Distance(sp, rj), 2000)
}

func TestDistanceShortRange(t *testing.T) {
	// ~200m north of the origin; the geofence checks ranges like this one.
	a := models.Coordinate{Lat: 0, Lng: 0}
	b := models.Coordinate{Lat: 0.0017986, Lng: 0}
	d := Distance(a, b)
	assert.InDelta(t, 200, d, 1)
	assert.Greater(t, d, 100.0)
}
