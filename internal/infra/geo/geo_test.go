package geo

import (
	"testing"

	"lookchat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	newYork := entity.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	philadelphia := entity.Coordinates{Latitude: 39.9526, Longitude: -75.1652}

	distance := DistanceKm(newYork, philadelphia)
	assert.InDelta(t, 130, distance, 5)
}

func TestFillDistances(t *testing.T) {
	origin := &entity.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	stores := []entity.Store{
		{ID: 1, Latitude: 40.7306, Longitude: -73.9352},
		{ID: 2, Latitude: 40.65, Longitude: -73.95, DistanceKm: 3.2},
	}

	filled := FillDistances(origin, stores)
	require.Len(t, filled, 2)
	assert.Greater(t, filled[0].DistanceKm, 0.0)
	assert.InDelta(t, 3.2, filled[1].DistanceKm, 1e-9, "backend-supplied distance kept")

	// Input untouched.
	assert.Zero(t, stores[0].DistanceKm)
}

func TestFillDistancesWithoutOrigin(t *testing.T) {
	stores := []entity.Store{{ID: 1, Latitude: 40.73, Longitude: -73.93}}

	filled := FillDistances(nil, stores)
	assert.Equal(t, stores, filled)
}

func TestDirectionsURL(t *testing.T) {
	origin := entity.Coordinates{Latitude: 40.7128, Longitude: -74.0060}
	store := entity.Store{ID: 1, Latitude: 40.7306, Longitude: -73.9352}

	url := DirectionsURL(origin, store)
	assert.Contains(t, url, "https://www.google.com/maps/dir/?")
	assert.Contains(t, url, "api=1")
	assert.Contains(t, url, "origin=40.712800%2C-74.006000")
	assert.Contains(t, url, "destination=40.730600%2C-73.935200")
}
