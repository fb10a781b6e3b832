package mapmatching

import (
	"math"
	"sort"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// cuttingPoints implements spec §4.5.2. When path is empty or every match
// is +Inf, there is no useful distance signal, so the only candidate is
// the trace's midpoint. Otherwise it collects the worst finite match plus
// every match near the epsilon boundary, compresses consecutive runs, and
// filters to interior indices.
func cuttingPoints(path []network.EdgeRef, matches []PointMatch, m int, cfg Config) []int {
	if len(path) == 0 || allInfinite(matches) {
		return []int{m / 2}
	}

	var candidates []int
	worstIdx, worstDist := -1, -1.0
	for i, pm := range matches {
		if math.IsInf(pm.DistanceToEdge, 1) {
			continue
		}
		if pm.DistanceToEdge > worstDist {
			worstDist = pm.DistanceToEdge
			worstIdx = i
		}
	}
	if worstIdx >= 0 {
		candidates = append(candidates, worstIdx)
	}
	for i, pm := range matches {
		if math.IsInf(pm.DistanceToEdge, 1) {
			continue
		}
		if math.Abs(pm.DistanceToEdge-cfg.DistanceEpsilon) < cfg.CuttingThreshold {
			candidates = append(candidates, i)
		}
	}

	compressed := compress(candidates)
	var filtered []int
	for _, idx := range compressed {
		if idx > 1 && idx < m-2 {
			filtered = append(filtered, idx)
		}
	}
	return filtered
}

func allInfinite(matches []PointMatch) bool {
	for _, pm := range matches {
		if !math.IsInf(pm.DistanceToEdge, 1) {
			return false
		}
	}
	return true
}

// compress collapses every maximal run of consecutive integers in indices
// down to a single representative, the middle of the run (the upper
// middle for an even-length run). Duplicates are removed and the result is
// sorted ascending (spec §8 "compress law").
func compress(indices []int) []int {
	if len(indices) == 0 {
		return nil
	}
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	deduped := make([]int, 0, len(sorted))
	for _, v := range sorted {
		if len(deduped) == 0 || v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}

	var out []int
	i := 0
	for i < len(deduped) {
		j := i
		for j+1 < len(deduped) && deduped[j+1] == deduped[j]+1 {
			j++
		}
		run := deduped[i : j+1]
		out = append(out, run[len(run)/2])
		i = j + 1
	}
	return out
}
