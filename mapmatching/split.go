package mapmatching

import (
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
)

// newSegment builds a fresh TrajectorySegment for trace: an initial path,
// its LCSS score and per-point matches, and the resulting cutting points.
func newSegment(trace MapMatchingTrace, idx EdgeIndex, graph *network.Graph, inst *search.Instance, cfg Config) (TrajectorySegment, error) {
	path, err := initialPath(trace, idx, graph, inst, cfg)
	if err != nil {
		return TrajectorySegment{}, err
	}
	score, matches, err := scoreAndMatch(trace, path, graph, cfg)
	if err != nil {
		return TrajectorySegment{}, err
	}
	cps := cuttingPoints(path, matches, len(trace), cfg)
	return TrajectorySegment{Trace: trace, Path: path, Matches: matches, Score: score, CuttingPoints: cps}, nil
}

// splitSegment implements spec §4.5 step 3/5: slice seg.Trace at each of
// its cutting points into half-open ranges, recomputing a fresh path for
// every non-empty slice. If seg is too short or has no cutting points, it
// is returned unchanged.
func splitSegment(seg TrajectorySegment, idx EdgeIndex, graph *network.Graph, inst *search.Instance, cfg Config) ([]TrajectorySegment, error) {
	m := len(seg.Trace)
	if m < 2 || len(seg.CuttingPoints) == 0 {
		return []TrajectorySegment{seg}, nil
	}

	var ranges [][2]int
	last := 0
	for _, cp := range seg.CuttingPoints {
		if cp > last {
			ranges = append(ranges, [2]int{last, cp})
		}
		last = cp
	}
	if last < m {
		ranges = append(ranges, [2]int{last, m})
	}

	out := make([]TrajectorySegment, 0, len(ranges))
	for _, r := range ranges {
		slice := seg.Trace[r[0]:r[1]]
		if len(slice) == 0 {
			continue
		}
		sub, err := newSegment(slice, idx, graph, inst, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if len(out) == 0 {
		return []TrajectorySegment{seg}, nil
	}
	return out, nil
}
