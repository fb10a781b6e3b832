package mapmatching

import "github.com/NatLabRockies/routee-compass-go/internal/geo"

// stationaryCompression is the result of collapsing runs of consecutive,
// effectively-identical trace points (spec §4.5 step 1) down to one
// representative per run.
type stationaryCompression struct {
	// Sub is the reduced trace: one point per run, in original order.
	Sub MapMatchingTrace
	// subToOriginal[i] is Sub[i]'s index in the original trace.
	subToOriginal []int
	// sourceForOriginal[i] is the Sub index whose eventual match should be
	// copied back to original trace position i during re-expansion.
	sourceForOriginal []int
}

// compressStationary scans trace for consecutive points whose pairwise
// haversine distance is below epsilonMeters, keeping the first point of
// each such run and dropping the rest.
func compressStationary(trace MapMatchingTrace, epsilonMeters float64) stationaryCompression {
	n := len(trace)
	out := stationaryCompression{sourceForOriginal: make([]int, n)}
	if n == 0 {
		return out
	}

	out.Sub = append(out.Sub, trace[0])
	out.subToOriginal = append(out.subToOriginal, 0)
	out.sourceForOriginal[0] = 0

	for i := 1; i < n; i++ {
		d := geo.HaversineMeters(trace[i-1].Coord, trace[i].Coord)
		if d < epsilonMeters {
			out.sourceForOriginal[i] = out.sourceForOriginal[i-1]
			continue
		}
		out.Sub = append(out.Sub, trace[i])
		out.subToOriginal = append(out.subToOriginal, i)
		out.sourceForOriginal[i] = len(out.Sub) - 1
	}
	return out
}

// expand re-inserts a copy of each sub-trace match at every originally
// stationary index, so the output aligns 1:1 with the original trace
// length (spec §4.5 step 8).
func (sc stationaryCompression) expand(subMatches []PointMatch) []PointMatch {
	out := make([]PointMatch, len(sc.sourceForOriginal))
	for i, subIdx := range sc.sourceForOriginal {
		if subIdx < len(subMatches) {
			out[i] = subMatches[subIdx]
		}
	}
	return out
}
