package network

// Builder assembles a Graph incrementally. It is the only way to construct a
// Graph; once Build returns, the Graph is frozen and Builder must not be
// reused. Builder itself is not safe for concurrent use.
type Builder struct {
	vertexCount int
	vertices    []Point
	edgeLists   map[EdgeListId]*edgeListBuilder
}

type edgeListBuilder struct {
	edges map[EdgeId]edgeRecord
	max   EdgeId
	seen  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{edgeLists: make(map[EdgeListId]*edgeListBuilder)}
}

// AddVertex registers a vertex coordinate and returns its dense VertexId.
// VertexIds are assigned in call order, starting at 0.
func (b *Builder) AddVertex(coord Point) VertexId {
	id := VertexId(b.vertexCount)
	b.vertices = append(b.vertices, coord)
	b.vertexCount++
	return id
}

// AddEdge registers a directed edge (src -> dst) with the given geometry
// under edgeID within edge list listID. Returns ErrDuplicateEdge if edgeID
// was already used in that edge list.
func (b *Builder) AddEdge(listID EdgeListId, edgeID EdgeId, src, dst VertexId, geom LineString) error {
	elb, ok := b.edgeLists[listID]
	if !ok {
		elb = &edgeListBuilder{edges: make(map[EdgeId]edgeRecord)}
		b.edgeLists[listID] = elb
	}
	if _, exists := elb.edges[edgeID]; exists {
		return ErrDuplicateEdge
	}
	elb.edges[edgeID] = edgeRecord{src: src, dst: dst, geom: geom}
	if !elb.seen || edgeID > elb.max {
		elb.max = edgeID
	}
	elb.seen = true
	return nil
}

// Build freezes the accumulated vertices and edges into an immutable Graph.
// EdgeIds within a list need not be contiguous; gaps are represented as
// never-referenced indices with no adjacency entries.
func (b *Builder) Build() *Graph {
	g := &Graph{
		vertices:  append([]Point(nil), b.vertices...),
		edgeLists: make(map[EdgeListId]*edgeList, len(b.edgeLists)),
	}

	for listID, elb := range b.edgeLists {
		n := int(elb.max) + 1
		el := &edgeList{
			edges:  make([]edgeRecord, n),
			outAdj: make([][]EdgeId, b.vertexCount),
			inAdj:  make([][]EdgeId, b.vertexCount),
		}
		for edgeID, rec := range elb.edges {
			el.edges[edgeID] = rec
			el.outAdj[rec.src] = append(el.outAdj[rec.src], edgeID)
			el.inAdj[rec.dst] = append(el.inAdj[rec.dst], edgeID)
		}
		for v := 0; v < b.vertexCount; v++ {
			sortEdgeIds(el.outAdj[v])
			sortEdgeIds(el.inAdj[v])
		}
		g.edgeLists[listID] = el
	}

	return g
}

// sortEdgeIds performs a tiny insertion sort; adjacency fan-out in road
// networks is small (single digits), so this beats pulling in sort.Slice
// per vertex at build time.
func sortEdgeIds(ids []EdgeId) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
