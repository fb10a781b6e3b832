package access

import "github.com/NatLabRockies/routee-compass-go/network"

// RoadClass is a road functional classification label (e.g. "motorway",
// "residential"). Edge-to-class assignment is supplied by the caller
// (originally a per-edge-id CSV column); loading that file is a
// collaborator's concern, not this package's.
type RoadClass string

// RoadClassConstraint admits an edge iff its assigned RoadClass is present
// in the allow set. An edge with no recorded class is rejected.
type RoadClassConstraint struct {
	classOf map[network.EdgeRef]RoadClass
	allowed map[RoadClass]struct{}
}

// NewRoadClassConstraint builds a RoadClassConstraint from a per-edge class
// assignment and the set of classes permitted for this query.
func NewRoadClassConstraint(classOf map[network.EdgeRef]RoadClass, allowed []RoadClass) *RoadClassConstraint {
	allowSet := make(map[RoadClass]struct{}, len(allowed))
	for _, c := range allowed {
		allowSet[c] = struct{}{}
	}
	return &RoadClassConstraint{classOf: classOf, allowed: allowSet}
}

func (r *RoadClassConstraint) Admissible(_ *network.EdgeRef, nextEdge network.EdgeRef) (bool, error) {
	class, ok := r.classOf[nextEdge]
	if !ok {
		return false, ErrUnknownRoadClass
	}
	_, allowed := r.allowed[class]
	return allowed, nil
}

var _ Model = (*RoadClassConstraint)(nil)
