package mapmatching

import (
	"math"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// MapMatchingPoint is a single coordinate in an input GPS trace.
type MapMatchingPoint struct {
	Coord network.Point
}

// MapMatchingTrace is an ordered, non-empty sequence of trace points.
type MapMatchingTrace []MapMatchingPoint

// PointMatch records how one trace point was matched to the candidate
// path: the edge it matched and its distance to that edge. A DistanceToEdge
// of +Inf means no edge was within the configured distance threshold.
type PointMatch struct {
	EdgeListId     network.EdgeListId
	EdgeId         network.EdgeId
	DistanceToEdge float64 // meters
}

// infDistance is the sentinel "no candidate within range" distance.
var infDistance = math.Inf(1)

// TrajectorySegment is one matched stretch of a trace: the sub-trace
// itself, the candidate path of edges it was matched against, the
// per-point matches, the LCSS similarity score, and the cutting-point
// indices computed from those matches.
type TrajectorySegment struct {
	Trace        MapMatchingTrace
	Path         []network.EdgeRef
	Matches      []PointMatch
	Score        float64
	CuttingPoints []int
}

// EdgeIndex is the edge-oriented spatial index collaborator: nearest
// candidate edges to a query point, closest first. Loading/building the
// index itself is an out-of-scope collaborator concern (spec §1); this
// package only consumes it.
type EdgeIndex interface {
	NearestEdges(p network.Point, k int) ([]network.EdgeRef, error)
}

// VertexIndex is a vertex-oriented spatial index, the kind LCSS matching
// cannot use directly (spec §4.5 precondition: "the spatial index must be
// edge-oriented"). It exists so RequireEdgeIndex can fail fast with a
// precise InternalError when a caller wires up the wrong kind.
type VertexIndex interface {
	NearestVertices(p network.Point, k int) ([]network.VertexId, error)
}

// RequireEdgeIndex asserts idx is edge-oriented, returning InternalError
// if it is not. Most callers can pass an EdgeIndex directly to MatchTrace
// and skip this check entirely; it exists for collaborators that resolve
// the index type dynamically (e.g. from query configuration) and need the
// spec's documented failure mode rather than a compile error.
func RequireEdgeIndex(idx interface{}) (EdgeIndex, error) {
	ei, ok := idx.(EdgeIndex)
	if !ok {
		return nil, &InternalError{Msg: "spatial index must be edge-oriented"}
	}
	return ei, nil
}
