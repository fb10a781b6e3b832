package network

// Direction selects which side of an edge a traversal is expanding from.
// Forward search walks outgoing edges from the current vertex; Reverse
// search (used for reverse A*) walks incoming edges instead.
type Direction int

const (
	// Forward expands along an edge's natural direction (src -> dst).
	Forward Direction = iota
	// Reverse expands against an edge's natural direction (dst -> src).
	Reverse
)

// edgeRecord is the immutable, dense representation of one directed edge.
type edgeRecord struct {
	src, dst   VertexId
	geom       LineString
}

// edgeList holds one parallel layer of directed edges plus the adjacency
// indexes needed for O(1) forward/reverse expansion.
type edgeList struct {
	edges   []edgeRecord   // indexed by EdgeId
	outAdj  [][]EdgeId     // outAdj[v] = edges with src == v
	inAdj   [][]EdgeId     // inAdj[v]  = edges with dst == v
}

// Graph is an immutable, read-only directed multigraph over a shared vertex
// set and one or more parallel EdgeListId layers. Once returned by
// Builder.Build, a Graph is never mutated again, so concurrent reads from
// many goroutines require no synchronization.
type Graph struct {
	vertices  []Point
	edgeLists map[EdgeListId]*edgeList
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the coordinate of v, or ErrVertexNotFound if out of range.
func (g *Graph) Vertex(v VertexId) (Point, error) {
	if v < 0 || int(v) >= len(g.vertices) {
		return Point{}, ErrVertexNotFound
	}
	return g.vertices[v], nil
}

// edgeListOrErr resolves an EdgeListId or returns ErrEdgeListNotFound.
func (g *Graph) edgeListOrErr(listID EdgeListId) (*edgeList, error) {
	el, ok := g.edgeLists[listID]
	if !ok {
		return nil, ErrEdgeListNotFound
	}
	return el, nil
}

// record resolves (listID, edgeID) to its edgeRecord.
func (g *Graph) record(listID EdgeListId, edgeID EdgeId) (edgeRecord, error) {
	el, err := g.edgeListOrErr(listID)
	if err != nil {
		return edgeRecord{}, err
	}
	if edgeID < 0 || int(edgeID) >= len(el.edges) {
		return edgeRecord{}, ErrEdgeNotFound
	}
	return el.edges[edgeID], nil
}

// SrcVertex returns the source vertex of an edge.
func (g *Graph) SrcVertex(listID EdgeListId, edgeID EdgeId) (VertexId, error) {
	r, err := g.record(listID, edgeID)
	if err != nil {
		return 0, err
	}
	return r.src, nil
}

// DstVertex returns the destination vertex of an edge.
func (g *Graph) DstVertex(listID EdgeListId, edgeID EdgeId) (VertexId, error) {
	r, err := g.record(listID, edgeID)
	if err != nil {
		return 0, err
	}
	return r.dst, nil
}

// Endpoints returns both endpoints of an edge in one lookup.
func (g *Graph) Endpoints(listID EdgeListId, edgeID EdgeId) (src, dst VertexId, err error) {
	r, err := g.record(listID, edgeID)
	if err != nil {
		return 0, 0, err
	}
	return r.src, r.dst, nil
}

// LineString returns the edge's geometry, an ordered sequence of (x,y) points.
func (g *Graph) LineString(listID EdgeListId, edgeID EdgeId) (LineString, error) {
	r, err := g.record(listID, edgeID)
	if err != nil {
		return nil, err
	}
	return r.geom, nil
}

// Adjacent iterates the edges touching v in the given direction within edge
// list listID: Forward returns v's outgoing edges, Reverse its incoming
// edges. The returned slice is owned by the Graph and must not be mutated.
func (g *Graph) Adjacent(listID EdgeListId, v VertexId, dir Direction) ([]EdgeId, error) {
	el, err := g.edgeListOrErr(listID)
	if err != nil {
		return nil, err
	}
	if v < 0 || int(v) >= len(g.vertices) {
		return nil, ErrVertexNotFound
	}
	if dir == Forward {
		return el.outAdj[v], nil
	}
	return el.inAdj[v], nil
}

// EdgeListIds returns every registered edge list layer, in ascending order.
func (g *Graph) EdgeListIds() []EdgeListId {
	ids := make([]EdgeListId, 0, len(g.edgeLists))
	for id := range g.edgeLists {
		ids = append(ids, id)
	}
	// dense, small, and typically already ascending from Build; sort defensively.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
