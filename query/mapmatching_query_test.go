package query_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/mapmatching"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/query"
)

func TestMapMatchingQueryValidateEmptyTrace(t *testing.T) {
	q := query.MapMatchingQuery{}
	assert.ErrorIs(t, q.Validate(), query.ErrEmptyTrace)
}

func TestMapMatchingQueryToTrace(t *testing.T) {
	q := query.MapMatchingQuery{Trace: []query.TracePointJSON{{X: 1, Y: 2}, {X: 3, Y: 4}}}
	require.NoError(t, q.Validate())
	trace := q.ToTrace()
	require.Len(t, trace, 2)
	assert.Equal(t, network.Point{X: 1, Y: 2}, trace[0].Coord)
	assert.Equal(t, network.Point{X: 3, Y: 4}, trace[1].Coord)
}

func TestMapMatchingQueryUnmarshalsFromJSON(t *testing.T) {
	raw := []byte(`{"trace":[{"x":1,"y":2}],"output_format":"edge_id","summary_ops":{"distance":"max"}}`)
	var q query.MapMatchingQuery
	require.NoError(t, json.Unmarshal(raw, &q))
	assert.Equal(t, query.OutputEdgeId, q.OutputFormat)
	assert.Equal(t, "max", q.SummaryOps["distance"])
}

func TestBuildMapMatchingResponseRendersEdgeIdPath(t *testing.T) {
	q := query.MapMatchingQuery{
		Trace:        []query.TracePointJSON{{X: -105.0, Y: 40.0}, {X: -104.97, Y: 40.0}},
		OutputFormat: query.OutputEdgeId,
	}
	result := &mapmatching.Result{
		Matches: []mapmatching.PointMatch{
			{EdgeListId: 0, EdgeId: 0, DistanceToEdge: 1.5},
		},
	}
	resp, err := query.BuildMapMatchingResponse(q, result, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.PointMatches, 1)
	assert.Equal(t, network.EdgeId(0), resp.PointMatches[0].EdgeId)
	assert.Nil(t, resp.TraversalSummary)
}
