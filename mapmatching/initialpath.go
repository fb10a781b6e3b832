package mapmatching

import (
	"github.com/NatLabRockies/routee-compass-go/internal/geo"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
)

// initialPath implements spec §4.5 step 2: find the nearest candidate edge
// for each of trace's endpoints, pick the closer endpoint vertex of each,
// and run a vertex-oriented shortest path between them. An empty path is a
// valid result when the endpoints coincide or no path exists.
func initialPath(trace MapMatchingTrace, idx EdgeIndex, graph *network.Graph, inst *search.Instance, cfg Config) ([]network.EdgeRef, error) {
	if len(trace) == 0 {
		return nil, nil
	}

	start, err := nearestVertex(trace[0].Coord, idx, graph, cfg.NearestCandidates)
	if err != nil {
		return nil, err
	}
	end, err := nearestVertex(trace[len(trace)-1].Coord, idx, graph, cfg.NearestCandidates)
	if err != nil {
		return nil, err
	}
	if start == end {
		return nil, nil
	}

	result, err := search.RunVertex(inst, start, &end, network.Forward, true)
	if err != nil {
		if _, noPath := err.(*search.NoPathExistsError); noPath {
			return nil, nil
		}
		return nil, &SearchError{Err: err}
	}

	path := make([]network.EdgeRef, len(result.Route))
	for i, et := range result.Route {
		path[i] = network.EdgeRef{EdgeListId: et.EdgeListId, EdgeId: et.EdgeId}
	}
	return path, nil
}

// nearestVertex resolves p to the closer endpoint vertex of its single
// nearest candidate edge, per spec §4.5 step 2.
func nearestVertex(p network.Point, idx EdgeIndex, graph *network.Graph, k int) (network.VertexId, error) {
	edges, err := idx.NearestEdges(p, k)
	if err != nil {
		return 0, &SearchError{Err: err}
	}
	if len(edges) == 0 {
		return 0, &InternalError{Msg: "spatial index returned no candidate edges"}
	}

	best := edges[0]
	src, dst, err := graph.Endpoints(best.EdgeListId, best.EdgeId)
	if err != nil {
		return 0, err
	}
	srcPt, err := graph.Vertex(src)
	if err != nil {
		return 0, err
	}
	dstPt, err := graph.Vertex(dst)
	if err != nil {
		return 0, err
	}
	if geo.HaversineMeters(p, srcPt) <= geo.HaversineMeters(p, dstPt) {
		return src, nil
	}
	return dst, nil
}
