// Package geo provides the small amount of geography the widget needs:
// user-to-store distances and directions links.
package geo

import (
	"fmt"
	"net/url"

	"lookchat/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers.
func DistanceKm(from, to entity.Coordinates) float64 {
	a := orb.Point{from.Longitude, from.Latitude}
	b := orb.Point{to.Longitude, to.Latitude}

	return orbgeo.Distance(a, b) / 1000.0
}

// FillDistances returns the stores with any missing distance-from-user
// computed from the given origin. Distances already supplied by the backend
// are kept as-is.
func FillDistances(origin *entity.Coordinates, stores []entity.Store) []entity.Store {
	if origin == nil {
		return stores
	}

	out := make([]entity.Store, len(stores))
	copy(out, stores)
	for i := range out {
		if out[i].DistanceKm == 0 {
			out[i].DistanceKm = DistanceKm(*origin, entity.Coordinates{
				Latitude:  out[i].Latitude,
				Longitude: out[i].Longitude,
			})
		}
	}

	return out
}

// DirectionsURL builds a Google Maps directions link from the user location
// to the store.
func DirectionsURL(origin entity.Coordinates, store entity.Store) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("destination", fmt.Sprintf("%f,%f", store.Latitude, store.Longitude))

	return "https://www.google.com/maps/dir/?" + params.Encode()
}
