package mapmatching_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/internal/fixture"
	"github.com/NatLabRockies/routee-compass-go/internal/geo"
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
	"github.com/NatLabRockies/routee-compass-go/state"
	"github.com/NatLabRockies/routee-compass-go/traversal"
)

// bruteForceEdgeIndex is a test-only EdgeIndex that scans every edge in a
// single edge list, used in place of the real spatial index collaborator
// (out of scope per spec §1) which production callers would supply.
type bruteForceEdgeIndex struct {
	graph  *network.Graph
	listID network.EdgeListId
	edges  []network.EdgeId
}

func newBruteForceEdgeIndex(graph *network.Graph, listID network.EdgeListId, edgeCount network.EdgeId) *bruteForceEdgeIndex {
	edges := make([]network.EdgeId, edgeCount)
	for i := range edges {
		edges[i] = network.EdgeId(i)
	}
	return &bruteForceEdgeIndex{graph: graph, listID: listID, edges: edges}
}

func (idx *bruteForceEdgeIndex) NearestEdges(p network.Point, k int) ([]network.EdgeRef, error) {
	type scored struct {
		ref  network.EdgeRef
		dist float64
	}
	all := make([]scored, 0, len(idx.edges))
	for _, e := range idx.edges {
		ls, err := idx.graph.LineString(idx.listID, e)
		if err != nil {
			continue
		}
		_, d, _, err := geo.ClosestPointOnLineString(p, ls)
		if err != nil {
			continue
		}
		all = append(all, scored{ref: network.EdgeRef{EdgeListId: idx.listID, EdgeId: e}, dist: d})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].dist < all[j].dist })
	if k > len(all) {
		k = len(all)
	}
	out := make([]network.EdgeRef, k)
	for i := 0; i < k; i++ {
		out[i] = all[i].ref
	}
	return out, nil
}

// gridSearchInstance builds a distance-weighted search.Instance over the
// shared 10x10 grid fixture, matching the setup used by the search
// package's own astar tests.
func gridSearchInstance(t *testing.T) (*search.Instance, *fixture.Grid) {
	t.Helper()
	grid := fixture.BuildGrid()
	sm, err := state.NewModel([]state.Variable{{Name: "distance", Unit: state.UnitMeters, Accumulator: true}})
	require.NoError(t, err)
	dm, err := traversal.NewDistanceModel(sm, "distance")
	require.NoError(t, err)
	cm, err := cost.NewCostModel(sm, []cost.Weight{{Variable: "distance", Factor: 1.0}})
	require.NoError(t, err)
	inst := &search.Instance{
		Graph:      grid.Graph,
		EdgeListId: 0,
		Traversal:  dm,
		Cost:       cm,
		Label:      label.VertexModel{},
	}
	return inst, grid
}

func countEdges(grid *fixture.Grid) network.EdgeId {
	var maxID network.EdgeId = -1
	for _, id := range grid.CoordOf {
		if id > maxID {
			maxID = id
		}
	}
	for _, id := range grid.VerticalOf {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
