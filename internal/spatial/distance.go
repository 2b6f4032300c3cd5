package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/darkskyoregon/sqm-backend-go/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// NearestSite returns the site closest to (lat, lon) and the distance to it
// in meters. ok is false when sites is empty.
func NearestSite(sites []models.Site, lat, lon float64) (nearest models.Site, distance float64, ok bool) {
	for i, s := range sites {
		d := HaversineDistance(lat, lon, s.Latitude, s.Longitude)
		if i == 0 || d < distance {
			nearest = s
			distance = d
			ok = true
		}
	}
	return nearest, distance, ok
}
