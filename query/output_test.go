package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/internal/fixture"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/query"
	"github.com/NatLabRockies/routee-compass-go/search"
)

func rowRoute(grid *fixture.Grid, endCol int) []search.EdgeTraversal {
	route := make([]search.EdgeTraversal, 0, endCol)
	for c := 0; c < endCol; c++ {
		route = append(route, search.EdgeTraversal{
			EdgeListId: 0,
			EdgeId:     grid.CoordOf[[2]int{0, c}],
		})
	}
	return route
}

func TestFormatRouteEdgeId(t *testing.T) {
	grid := fixture.BuildGrid()
	route := rowRoute(grid, 3)

	out, err := query.FormatRoute(route, grid.Graph, query.OutputEdgeId)
	require.NoError(t, err)
	refs, ok := out.([]network.EdgeRef)
	require.True(t, ok)
	require.Len(t, refs, 3)
	assert.Equal(t, grid.CoordOf[[2]int{0, 0}], refs[0].EdgeId)
}

func TestFormatRouteJSON(t *testing.T) {
	grid := fixture.BuildGrid()
	route := rowRoute(grid, 3)

	out, err := query.FormatRoute(route, grid.Graph, query.OutputJSON)
	require.NoError(t, err)
	summaries, ok := out.([]query.EdgeSummary)
	require.True(t, ok)
	require.Len(t, summaries, 3)
	assert.Equal(t, grid.CoordOf[[2]int{0, 0}], summaries[0].EdgeId)
}

func TestFormatRouteWKT(t *testing.T) {
	grid := fixture.BuildGrid()
	route := rowRoute(grid, 3)

	out, err := query.FormatRoute(route, grid.Graph, query.OutputWKT)
	require.NoError(t, err)
	wkt, ok := out.(string)
	require.True(t, ok)
	assert.Contains(t, wkt, "LINESTRING")
}

func TestFormatRouteGeoJSON(t *testing.T) {
	grid := fixture.BuildGrid()
	route := rowRoute(grid, 3)

	out, err := query.FormatRoute(route, grid.Graph, query.OutputGeoJSON)
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestFormatRouteUnsupportedFormat(t *testing.T) {
	grid := fixture.BuildGrid()
	route := rowRoute(grid, 1)

	_, err := query.FormatRoute(route, grid.Graph, query.OutputFormat("bogus"))
	assert.ErrorIs(t, err, query.ErrUnsupportedOutputFormat)
}
