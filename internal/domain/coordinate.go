package domain

import "math"

// Immutable geographic coordinates in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

const (
	earthRadiusKm = 6371.0

	// Highways run roughly 15% longer than the straight line between two
	// points. The factor is part of the pricing contract and is fixed.
	roadCorrectionFactor = 1.15
)

// RoadDistanceKm returns the haversine distance between two points,
// corrected for road routing. Symmetric; zero for identical points.
func RoadDistanceKm(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lon1 := a.Lon * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lon2 := b.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return earthRadiusKm * c * roadCorrectionFactor
}
