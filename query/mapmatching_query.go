package query

import (
	"encoding/json"

	"github.com/NatLabRockies/routee-compass-go/mapmatching"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// TracePointJSON is the wire shape of one map-matching trace point (spec
// §6: "{x: number, y: number}").
type TracePointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapMatchingQuery is the external request shape for map matching (spec
// §6, pinned down precisely from original_source/'s
// map_matching_request.rs).
type MapMatchingQuery struct {
	Trace            []TracePointJSON  `json:"trace"`
	SearchParameters json.RawMessage   `json:"search_parameters,omitempty"`
	OutputFormat     OutputFormat      `json:"output_format,omitempty"`
	SummaryOps       map[string]string `json:"summary_ops,omitempty"`
}

// ToTrace converts q's wire-shaped points into a mapmatching.MapMatchingTrace.
func (q MapMatchingQuery) ToTrace() mapmatching.MapMatchingTrace {
	trace := make(mapmatching.MapMatchingTrace, len(q.Trace))
	for i, p := range q.Trace {
		trace[i] = mapmatching.MapMatchingPoint{Coord: network.Point{X: p.X, Y: p.Y}}
	}
	return trace
}

// Validate reports ErrEmptyTrace for an empty query, per spec §6 "Empty
// trace ⇒ validation error".
func (q MapMatchingQuery) Validate() error {
	if len(q.Trace) == 0 {
		return ErrEmptyTrace
	}
	return nil
}

// PointMatchJSON is the wire shape of one matched trace point (spec §6).
type PointMatchJSON struct {
	EdgeListId network.EdgeListId `json:"edge_list_id"`
	EdgeId     network.EdgeId     `json:"edge_id"`
	Distance   float64            `json:"distance"`
}

// MapMatchingResponse is the external response shape for map matching
// (spec §6, pinned down from original_source/'s map_matching_response.rs).
type MapMatchingResponse struct {
	PointMatches      []PointMatchJSON   `json:"point_matches"`
	MatchedPath       interface{}        `json:"matched_path"`
	TraversalSummary  map[string]Summary `json:"traversal_summary,omitempty"`
}

// overrideOps parses a query's raw summary_ops map into SummaryOp values,
// silently dropping any entry naming an unrecognized operation (the
// variable falls back to its DefaultOp instead of failing the whole
// response).
func overrideOps(raw map[string]string) map[string]SummaryOp {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]SummaryOp, len(raw))
	for field, opName := range raw {
		if op, ok := ParseSummaryOp(opName); ok {
			out[field] = op
		}
	}
	return out
}

// BuildMapMatchingResponse renders a mapmatching.Result into the external
// response shape, formatting the matched path per q.OutputFormat
// (defaulting to OutputJSON) and summarizing the path's traversals if sm
// and traversals are supplied (nil sm skips the traversal_summary field,
// since a bare map-matching result carries point matches but not, by
// itself, per-edge state vectors).
func BuildMapMatchingResponse(q MapMatchingQuery, result *mapmatching.Result, graph *network.Graph, sm *state.StateModel, traversals []search.EdgeTraversal) (*MapMatchingResponse, error) {
	format := q.OutputFormat
	if format == "" {
		format = OutputJSON
	}

	pathTraversals := make([]search.EdgeTraversal, len(result.Segment.Path))
	for i, ref := range result.Segment.Path {
		pathTraversals[i] = search.EdgeTraversal{EdgeListId: ref.EdgeListId, EdgeId: ref.EdgeId}
	}
	matchedPath, err := FormatRoute(pathTraversals, graph, format)
	if err != nil {
		return nil, err
	}

	resp := &MapMatchingResponse{
		PointMatches: make([]PointMatchJSON, len(result.Matches)),
		MatchedPath:  matchedPath,
	}
	for i, m := range result.Matches {
		resp.PointMatches[i] = PointMatchJSON{EdgeListId: m.EdgeListId, EdgeId: m.EdgeId, Distance: m.DistanceToEdge}
	}

	if sm != nil && len(traversals) > 0 {
		resp.TraversalSummary = SummarizeTraversals(traversals, sm, overrideOps(q.SummaryOps))
	}

	return resp, nil
}
