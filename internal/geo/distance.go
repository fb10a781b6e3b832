package geo

import (
	"github.com/umahmood/haversine"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// HaversineMeters returns the great-circle distance between two points in
// meters.
func HaversineMeters(a, b network.Point) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Y, Lon: a.X},
		haversine.Coord{Lat: b.Y, Lon: b.X},
	)
	return km * 1000.0
}

// LineStringLengthMeters sums the great-circle length of each segment of ls.
// Returns ErrEmptyLineString if ls has no points; a single-point linestring
// has length zero.
func LineStringLengthMeters(ls network.LineString) (float64, error) {
	if len(ls) == 0 {
		return 0, ErrEmptyLineString
	}
	total := 0.0
	for i := 1; i < len(ls); i++ {
		total += HaversineMeters(ls[i-1], ls[i])
	}
	return total, nil
}

// ClosestPointOnSegment projects p onto the segment [a, b] (treated as
// locally planar, which is adequate at the sub-kilometer scale map matching
// operates on) and returns the projected point together with t in [0, 1],
// the fractional distance from a to b.
func ClosestPointOnSegment(p, a, b network.Point) (network.Point, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return a, 0
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return network.Point{X: a.X + t*dx, Y: a.Y + t*dy}, t
}

// ClosestPointOnLineString projects p onto every segment of ls and returns
// the closest resulting point, the distance to it in meters, and the index
// of the segment it falls on (the index of the segment's first point).
// Returns ErrEmptyLineString if ls has fewer than two points.
func ClosestPointOnLineString(p network.Point, ls network.LineString) (network.Point, float64, int, error) {
	if len(ls) < 2 {
		return network.Point{}, 0, 0, ErrEmptyLineString
	}
	bestDist := -1.0
	var bestPoint network.Point
	bestIdx := 0
	for i := 0; i < len(ls)-1; i++ {
		proj, _ := ClosestPointOnSegment(p, ls[i], ls[i+1])
		d := HaversineMeters(p, proj)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestPoint = proj
			bestIdx = i
		}
	}
	return bestPoint, bestDist, bestIdx, nil
}
