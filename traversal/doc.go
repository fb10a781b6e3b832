// Package traversal computes how a traversal's state vector changes when
// crossing a single edge, and provides an admissible remaining-state
// estimate between two points for the A* heuristic. A Model is the
// pluggable contract the search driver depends on; DistanceModel,
// SpeedModel, TimeModel, and Combined are the default implementations
// recovered from the distance/speed/time/combined traversal configs.
package traversal

import "errors"

// Sentinel errors for traversal model construction and edge traversal.
var (
	// ErrUnknownModelType indicates a combined model's registry has no
	// builder for a requested model type name.
	ErrUnknownModelType = errors.New("traversal: unknown traversal model type")

	// ErrNoModelsConfigured indicates a Combined model was built with an
	// empty sub-model list.
	ErrNoModelsConfigured = errors.New("traversal: no sub-models configured")

	// ErrMissingSpeed indicates a SpeedProvider returned no usable speed for
	// an edge (e.g. zero or negative), which would make elapsed time
	// undefined.
	ErrMissingSpeed = errors.New("traversal: missing or non-positive edge speed")
)
