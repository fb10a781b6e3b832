// Package geo provides the small set of geometric primitives the traversal,
// search, and map-matching packages share: great-circle distance between
// coordinates, the length of a linestring, nearest-point-on-segment
// projection, and GeoJSON/WKT emission for route output.
package geo

import "errors"

// ErrEmptyLineString indicates a network.LineString had too few points for
// the operation: none for a length, fewer than two for a projection.
var ErrEmptyLineString = errors.New("geo: linestring has no points")
