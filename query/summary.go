package query

import (
	"strings"

	"github.com/NatLabRockies/routee-compass-go/search"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// SummaryOp names a reduction applied to a state variable's per-edge values
// across a route (spec §6 "Summary operations").
type SummaryOp string

const (
	SummarySum   SummaryOp = "sum"
	SummaryAvg   SummaryOp = "avg"
	SummaryLast  SummaryOp = "last"
	SummaryFirst SummaryOp = "first"
	SummaryMin   SummaryOp = "min"
	SummaryMax   SummaryOp = "max"
)

// Summary is one state variable's reduced value, as emitted in a query
// response (spec §6: "{value, unit, op}").
type Summary struct {
	Value float64
	Unit  state.Unit
	Op    SummaryOp
}

// DefaultOp picks v's default summary operation per spec §5's recovered
// rule (summary_op.rs): distance-like units default to Sum, speed-like
// units to Avg, and everything else falls back to the general
// accumulator-vs-instantaneous rule (Last for accumulators, Sum
// otherwise).
func DefaultOp(v state.Variable) SummaryOp {
	switch v.Unit {
	case state.UnitMeters, state.UnitMiles, state.UnitKilometers:
		return SummarySum
	case state.UnitMetersPerSecond, state.UnitKph, state.UnitMph:
		return SummaryAvg
	}
	if v.Accumulator {
		return SummaryLast
	}
	return SummarySum
}

// Summarize reduces values per op. An empty values returns 0.
func Summarize(values []float64, op SummaryOp) float64 {
	if len(values) == 0 {
		return 0
	}
	switch op {
	case SummaryFirst:
		return values[0]
	case SummaryLast:
		return values[len(values)-1]
	case SummaryMin:
		m := values[0]
		for _, v := range values[1:] {
			if v < m {
				m = v
			}
		}
		return m
	case SummaryMax:
		m := values[0]
		for _, v := range values[1:] {
			if v > m {
				m = v
			}
		}
		return m
	case SummaryAvg:
		var total float64
		for _, v := range values {
			total += v
		}
		return total / float64(len(values))
	case SummarySum:
		fallthrough
	default:
		var total float64
		for _, v := range values {
			total += v
		}
		return total
	}
}

// SummarizeTraversals reduces an ordered list of edge traversals down to
// one Summary per state variable in sm, implementing spec §6's
// traversal_summary (recovered in more detail from
// route_output.rs/output_generator.rs as a generic "reduce traversal list
// to a summary object" operation, reused by both plain shortest-path
// routes and map-matched paths). overrides may supply a non-default op
// for specific variable names; nil is treated as empty.
func SummarizeTraversals(traversals []search.EdgeTraversal, sm *state.StateModel, overrides map[string]SummaryOp) map[string]Summary {
	out := make(map[string]Summary, sm.Len())
	for i, v := range sm.Variables() {
		values := make([]float64, len(traversals))
		for j, t := range traversals {
			values[j] = float64(t.ResultState[i])
		}
		op, ok := overrides[v.Name]
		if !ok {
			op = DefaultOp(v)
		}
		out[v.Name] = Summary{Value: Summarize(values, op), Unit: v.Unit, Op: op}
	}
	return out
}

// ParseSummaryOp normalizes a caller-supplied op string (case-insensitive)
// into a SummaryOp, falling back to false if it names none of the
// recognized operations.
func ParseSummaryOp(s string) (SummaryOp, bool) {
	switch SummaryOp(strings.ToLower(s)) {
	case SummarySum:
		return SummarySum, true
	case SummaryAvg:
		return SummaryAvg, true
	case SummaryLast:
		return SummaryLast, true
	case SummaryFirst:
		return SummaryFirst, true
	case SummaryMin:
		return SummaryMin, true
	case SummaryMax:
		return SummaryMax, true
	default:
		return "", false
	}
}
