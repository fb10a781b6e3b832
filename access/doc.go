// Package access gates edge admissibility before the search driver spends
// a Traversal/Cost Model evaluation on an edge. Model is the shared
// contract; TurnRestriction, RoadClassConstraint, and VehicleRestriction are the
// default constraint kinds recovered from the turn-restriction,
// road-class, and vehicle-restriction constraint configs.
package access

import "errors"

// Sentinel errors for constraint model construction.
var (
	// ErrUnknownRoadClass indicates an edge was queried for a road class
	// the model was never given data for.
	ErrUnknownRoadClass = errors.New("access: no road class recorded for edge")

	// ErrInvalidVehicleParameter indicates a vehicle parameter's value was
	// outside its valid domain (e.g. a negative weight).
	ErrInvalidVehicleParameter = errors.New("access: invalid vehicle parameter value")
)
