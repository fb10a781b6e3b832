package mapmatching

import (
	"math"

	"github.com/NatLabRockies/routee-compass-go/internal/geo"
	"github.com/NatLabRockies/routee-compass-go/network"
)

// scoreAndMatch implements spec §4.5.1: an LCSS similarity score between
// trace and path, plus one PointMatch per trace point.
//
// path edges are resolved against graph to get each candidate's
// linestring; the distance matrix entry D[j][i] is the haversine distance
// from trace point i to the nearest point on path edge j's geometry.
func scoreAndMatch(trace MapMatchingTrace, path []network.EdgeRef, graph *network.Graph, cfg Config) (float64, []PointMatch, error) {
	m := len(trace)
	if m == 0 {
		return 0, nil, ErrEmptyTrace
	}
	n := len(path)
	if n == 0 {
		matches := make([]PointMatch, m)
		for i := range matches {
			matches[i] = PointMatch{DistanceToEdge: infDistance}
		}
		return 0, matches, nil
	}

	// 1) Precompute the n x m distance matrix: D[j][i] = distance from
	// trace point i to the nearest point on path edge j's geometry.
	dist := make([][]float64, n)
	for j, ref := range path {
		dist[j] = make([]float64, m)
		ls, err := graph.LineString(ref.EdgeListId, ref.EdgeId)
		if err != nil {
			return 0, nil, &SearchError{Err: err}
		}
		for i, pt := range trace {
			if len(ls) < 2 {
				dist[j][i] = infDistance
				continue
			}
			_, d, _, err := geo.ClosestPointOnLineString(pt.Coord, ls)
			if err != nil {
				dist[j][i] = infDistance
				continue
			}
			dist[j][i] = d
		}
	}

	// 2) LCSS DP over an (m+1) x (n+1) table, all zero-initialized.
	c := make([][]float64, m+1)
	for i := range c {
		c[i] = make([]float64, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			matchScore := c[i-1][j-1] + similarity(dist[j-1][i-1], cfg.DistanceEpsilon)
			c[i][j] = max3(matchScore, c[i][j-1], c[i-1][j])
		}
	}

	// 3) Per-trace-point match: nearest candidate edge, thresholded.
	matches := make([]PointMatch, m)
	for i := 0; i < m; i++ {
		bestJ, bestD := 0, infDistance
		for j := 0; j < n; j++ {
			if dist[j][i] < bestD {
				bestD = dist[j][i]
				bestJ = j
			}
		}
		reported := bestD
		if reported > cfg.DistanceThreshold {
			reported = infDistance
		}
		matches[i] = PointMatch{
			EdgeListId:     path[bestJ].EdgeListId,
			EdgeId:         path[bestJ].EdgeId,
			DistanceToEdge: reported,
		}
	}

	score := c[m][n] / float64(minInt(m, n))

	// 4) Endpoint penalty.
	firstD, lastD := matches[0].DistanceToEdge, matches[m-1].DistanceToEdge
	if firstD > cfg.DistanceEpsilon || lastD > cfg.DistanceEpsilon {
		score /= (ratioAtLeastOne(firstD, cfg.DistanceEpsilon) + ratioAtLeastOne(lastD, cfg.DistanceEpsilon)) / 2
	}

	return score, matches, nil
}

// similarity is the LCSS kernel s(d): linear falloff to zero at epsilon.
func similarity(d, epsilon float64) float64 {
	if d < epsilon {
		return 1 - d/epsilon
	}
	return 0
}

// ratioAtLeastOne returns max(d/epsilon, 1), treating a +Inf distance as an
// arbitrarily large (but finite-safe) ratio so the penalty division stays
// well-defined.
func ratioAtLeastOne(d, epsilon float64) float64 {
	if math.IsInf(d, 1) {
		return math.MaxFloat64
	}
	r := d / epsilon
	if r < 1 {
		return 1
	}
	return r
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
