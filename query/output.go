package query

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/NatLabRockies/routee-compass-go/internal/geo"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
)

// OutputFormat selects how FormatRoute renders a matched path (spec §6).
type OutputFormat string

const (
	OutputJSON     OutputFormat = "json"
	OutputEdgeId   OutputFormat = "edge_id"
	OutputWKT      OutputFormat = "wkt"
	OutputGeoJSON  OutputFormat = "geo_json"
)

// EdgeSummary is one route edge's externally-reported shape for the "json"
// output format: enough to identify the edge and see its contribution to
// the route without requiring the caller to hold the Graph.
type EdgeSummary struct {
	EdgeListId    network.EdgeListId
	EdgeId        network.EdgeId
	ObjectiveCost float64
}

// FormatRoute renders route (in traversal order) per format.
//
//   - OutputJSON renders one EdgeSummary per traversed edge.
//   - OutputEdgeId renders the bare ordered list of network.EdgeRef.
//   - OutputWKT renders a single WKT LINESTRING, concatenating every
//     edge's geometry and dropping consecutive duplicate vertices at the
//     seams.
//   - OutputGeoJSON renders a geojson.FeatureCollection with one Feature
//     per traversed edge, each carrying its ObjectiveCost as a property.
func FormatRoute(route []search.EdgeTraversal, graph *network.Graph, format OutputFormat) (interface{}, error) {
	switch format {
	case OutputJSON:
		out := make([]EdgeSummary, len(route))
		for i, et := range route {
			out[i] = EdgeSummary{EdgeListId: et.EdgeListId, EdgeId: et.EdgeId, ObjectiveCost: et.Cost.ObjectiveCost}
		}
		return out, nil

	case OutputEdgeId:
		out := make([]network.EdgeRef, len(route))
		for i, et := range route {
			out[i] = network.EdgeRef{EdgeListId: et.EdgeListId, EdgeId: et.EdgeId}
		}
		return out, nil

	case OutputWKT:
		merged, err := mergeLineStrings(route, graph)
		if err != nil {
			return nil, err
		}
		return geo.ToWKT(merged)

	case OutputGeoJSON:
		fc := geojson.NewFeatureCollection()
		for _, et := range route {
			ls, err := graph.LineString(et.EdgeListId, et.EdgeId)
			if err != nil {
				return nil, err
			}
			f, err := geo.ToGeoJSONFeature(ls, map[string]interface{}{
				"edge_id":        int64(et.EdgeId),
				"edge_list_id":   int64(et.EdgeListId),
				"objective_cost": et.Cost.ObjectiveCost,
			})
			if err != nil {
				return nil, err
			}
			fc.AddFeature(f)
		}
		return fc, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, format)
	}
}

// mergeLineStrings concatenates each traversed edge's geometry into one
// LineString, dropping a seam's duplicate point when consecutive edges
// share it exactly.
func mergeLineStrings(route []search.EdgeTraversal, graph *network.Graph) (network.LineString, error) {
	var merged network.LineString
	for _, et := range route {
		ls, err := graph.LineString(et.EdgeListId, et.EdgeId)
		if err != nil {
			return nil, err
		}
		if len(merged) > 0 && len(ls) > 0 && merged[len(merged)-1] == ls[0] {
			merged = append(merged, ls[1:]...)
		} else {
			merged = append(merged, ls...)
		}
	}
	return merged, nil
}
