// Package geo provides the great-circle distance used by nearest-node
// snapping and the search heuristic.
//
// Distances are computed with the haversine (half-angle) formula on a
// sphere of radius 6371 km and returned in kilometers. The formula is
// numerically stable for the short distances typical of road networks.
package geo

import (
	"math"

	"roadroute/core"
)

// EarthRadiusKm is the mean Earth radius used for all distance
// computations.
const EarthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Haversine returns the great-circle distance between a and b in
// kilometers.
func Haversine(a, b core.Coordinate) float64 {
	// Convert both positions and their deltas to radians.
	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dPhi := (b.Lat - a.Lat) * degToRad
	dLambda := (b.Lon - a.Lon) * degToRad

	// Half-angle form: h = sin²(Δφ/2) + cosφ₁·cosφ₂·sin²(Δλ/2).
	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// Central angle c = 2·atan2(√h, √(1−h)).
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
