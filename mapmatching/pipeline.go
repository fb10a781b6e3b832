package mapmatching

import (
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
)

// Result is the outcome of MatchTrace: the final joined segment (trace,
// path, score) and per-original-trace-point matches, re-expanded to align
// 1:1 with the caller's input trace length (spec §4.5 step 8).
type Result struct {
	Segment TrajectorySegment
	Matches []PointMatch
}

// MatchTrace runs the full LCSS pipeline (spec §4.5) over trace: stationary
// compression, an initial whole-trace shortest path, iterative split
// refinement, and a final join/re-score. idx must be an edge-oriented
// spatial index (see RequireEdgeIndex for callers resolving the index type
// dynamically).
func MatchTrace(trace MapMatchingTrace, idx EdgeIndex, graph *network.Graph, inst *search.Instance, cfg Config) (*Result, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyTrace
	}

	sc := compressStationary(trace, cfg.StationaryEpsilonMeters)

	whole, err := newSegment(sc.Sub, idx, graph, inst, cfg)
	if err != nil {
		return nil, err
	}

	segments, err := splitSegment(whole, idx, graph, inst, cfg)
	if err != nil {
		return nil, err
	}

	segments = refine(segments, idx, graph, inst, cfg)

	final, err := joinSegments(segments, graph, inst, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Segment: final,
		Matches: sc.expand(final.Matches),
	}, nil
}

// refine implements spec §4.5 step 6: up to cfg.MaxSplitRounds rounds,
// attempt a split on every segment scoring below the similarity cutoff;
// accept a split only if re-joining it scores strictly better than the
// segment it replaces. Stops early once a round makes no change.
func refine(segments []TrajectorySegment, idx EdgeIndex, graph *network.Graph, inst *search.Instance, cfg Config) []TrajectorySegment {
	for round := 0; round < cfg.MaxSplitRounds; round++ {
		changed := false
		for i := 0; i < len(segments); i++ {
			seg := segments[i]
			if seg.Score >= cfg.SimilarityCutoff || len(seg.CuttingPoints) == 0 {
				continue
			}

			candidates, err := splitSegment(seg, idx, graph, inst, cfg)
			if err != nil || len(candidates) <= 1 {
				continue
			}
			rejoined, err := joinSegments(candidates, graph, inst, cfg)
			if err != nil {
				continue
			}
			if rejoined.Score > seg.Score {
				segments = spliceReplace(segments, i, candidates)
				// step past the replacements; they are revisited next round
				i += len(candidates) - 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return segments
}

// spliceReplace returns a new slice with segments[i] replaced by
// replacement, preserving order.
func spliceReplace(segments []TrajectorySegment, i int, replacement []TrajectorySegment) []TrajectorySegment {
	out := make([]TrajectorySegment, 0, len(segments)-1+len(replacement))
	out = append(out, segments[:i]...)
	out = append(out, replacement...)
	out = append(out, segments[i+1:]...)
	return out
}
