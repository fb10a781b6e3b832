package mapmatching

import (
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
)

// joinSegments implements spec §4.5.4: concatenate every segment's trace
// in order, bridging gaps in the path where adjacent segments' paths
// don't already connect, dedupe consecutive repeated edges, and re-score
// the joined result.
func joinSegments(segments []TrajectorySegment, graph *network.Graph, inst *search.Instance, cfg Config) (TrajectorySegment, error) {
	var trace MapMatchingTrace
	var path []network.EdgeRef

	for i, seg := range segments {
		if i > 0 {
			gap, err := bridgeGap(segments[i-1].Path, seg.Path, graph, inst)
			if err != nil {
				return TrajectorySegment{}, err
			}
			path = append(path, gap...)
		}
		trace = append(trace, seg.Trace...)
		path = append(path, seg.Path...)
	}

	path = dedupeConsecutive(path)
	score, matches, err := scoreAndMatch(trace, path, graph, cfg)
	if err != nil {
		return TrajectorySegment{}, err
	}
	return TrajectorySegment{Trace: trace, Path: path, Matches: matches, Score: score}, nil
}

// bridgeGap fills the gap between two adjacent segments' paths when both
// are non-empty, their endpoints don't already meet at the same edge, and
// the vertices they land on differ. A failed shortest path leaves the gap
// unfilled (the segments are concatenated disconnected) rather than
// aborting the join.
func bridgeGap(prevPath, nextPath []network.EdgeRef, graph *network.Graph, inst *search.Instance) ([]network.EdgeRef, error) {
	if len(prevPath) == 0 || len(nextPath) == 0 {
		return nil, nil
	}
	lastRef, firstRef := prevPath[len(prevPath)-1], nextPath[0]
	if lastRef == firstRef {
		return nil, nil
	}

	from, err := graph.DstVertex(lastRef.EdgeListId, lastRef.EdgeId)
	if err != nil {
		return nil, err
	}
	to, err := graph.SrcVertex(firstRef.EdgeListId, firstRef.EdgeId)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, nil
	}

	result, err := search.RunVertex(inst, from, &to, network.Forward, true)
	if err != nil {
		if _, noPath := err.(*search.NoPathExistsError); noPath {
			return nil, nil
		}
		return nil, &SearchError{Err: err}
	}

	gap := make([]network.EdgeRef, len(result.Route))
	for i, et := range result.Route {
		gap[i] = network.EdgeRef{EdgeListId: et.EdgeListId, EdgeId: et.EdgeId}
	}
	return gap, nil
}

// dedupeConsecutive removes consecutive repeated edges from path.
func dedupeConsecutive(path []network.EdgeRef) []network.EdgeRef {
	if len(path) == 0 {
		return path
	}
	out := make([]network.EdgeRef, 0, len(path))
	out = append(out, path[0])
	for _, ref := range path[1:] {
		if ref != out[len(out)-1] {
			out = append(out, ref)
		}
	}
	return out
}
