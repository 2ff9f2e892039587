package domain

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	// Latitude in decimal degrees.
	Latitude float64 `json:"lat"`
	// Longitude in decimal degrees.
	Longitude float64 `json:"lng"`
}

// Valid reports whether the point carries a usable coordinate.
// The zero-zero point is treated as "no known location", not equatorial.
func (p GeoPoint) Valid() bool {
	return p.Latitude != 0 || p.Longitude != 0
}

// DistanceKm returns the great-circle (haversine) distance between two points
// in kilometers. Inputs are not range-validated; callers exclude invalid
// coordinates before calling.
func DistanceKm(a, b GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
