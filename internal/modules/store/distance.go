package store

import "math"

// NearbyRadius is the exclusive cutoff for "nearby" stores, in coordinate
// units.
const NearbyRadius = 30.0

// Distance is the Euclidean distance between two points on the coordinate
// grid. Coordinates are grid units, not geographic degrees.
func Distance(lat1, long1, lat2, long2 float64) float64 {
	t1 := (lat1 - lat2) * (lat1 - lat2)
	t2 := (long1 - long2) * (long1 - long2)
	return math.Sqrt(t1 + t2)
}
