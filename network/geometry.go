package network

import "github.com/golang/geo/s2"

// Point is a geographic coordinate in (longitude, latitude) order, matching
// the {x, y} convention used by the map matching query/response objects.
type Point struct {
	X float64 // longitude, degrees
	Y float64 // latitude, degrees
}

// LatLng converts p to an s2.LatLng for geodesic computations.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Y, p.X)
}

// PointFromLatLng builds a Point from an s2.LatLng.
func PointFromLatLng(ll s2.LatLng) Point {
	return Point{X: ll.Lng.Degrees(), Y: ll.Lat.Degrees()}
}

// LineString is an ordered sequence of points describing an edge's geometry.
type LineString []Point

// Length returns the number of points in ls.
func (ls LineString) Length() int { return len(ls) }
