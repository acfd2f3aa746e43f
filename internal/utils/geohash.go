package utils

import (
	"math"

	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// RouteKeyPrecision is the geohash precision used for route cache keys.
// Precision 7 cells are roughly 150m x 150m, coarse enough that nearby
// pickup points share a cached quote.
const RouteKeyPrecision = 7

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

// RouteKey builds the cache key pair for an origin/destination route
func RouteKey(origin, destination models.Coordinate) (string, string) {
	return EncodeCoordinate(origin, RouteKeyPrecision),
		EncodeCoordinate(destination, RouteKeyPrecision)
}

// CalculateDistance calculates the distance between two coordinates in
// kilometers using the Haversine formula
func CalculateDistance(a, b models.Coordinate) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
