package mapmatching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// TestCompressLaw exercises spec §8 property 8: every maximal run of
// consecutive integers collapses to its single middle representative;
// non-consecutive inputs pass through verbatim; empty maps to empty.
func TestCompressLaw(t *testing.T) {
	assert.Nil(t, compress(nil))
	assert.Equal(t, []int{5}, compress([]int{5}))
	assert.Equal(t, []int{1, 5, 9}, compress([]int{9, 1, 5}))
	// run 2,3,4,5 -> middle is index 4/2=2 into the run -> value 4
	assert.Equal(t, []int{4}, compress([]int{2, 3, 4, 5}))
	// run 2,3,4 (odd length) -> middle index 3/2=1 -> value 3
	assert.Equal(t, []int{3}, compress([]int{4, 2, 3}))
	// duplicates collapse before run detection
	assert.Equal(t, []int{3}, compress([]int{2, 2, 3, 3, 4}))
	// two disjoint runs
	assert.Equal(t, []int{1, 6}, compress([]int{0, 1, 2, 5, 6, 7}))
}

func TestCuttingPointsEmptyPathReturnsMidpoint(t *testing.T) {
	cfg := DefaultConfig()
	cps := cuttingPoints(nil, []PointMatch{{DistanceToEdge: infDistance}, {DistanceToEdge: infDistance}}, 10, cfg)
	assert.Equal(t, []int{5}, cps)
}

func TestCuttingPointsAllInfiniteReturnsMidpoint(t *testing.T) {
	cfg := DefaultConfig()
	path := []network.EdgeRef{{EdgeListId: 0, EdgeId: 0}}
	matches := []PointMatch{{DistanceToEdge: infDistance}, {DistanceToEdge: infDistance}, {DistanceToEdge: infDistance}}
	cps := cuttingPoints(path, matches, 6, cfg)
	assert.Equal(t, []int{3}, cps)
}

func TestCuttingPointsFiltersInteriorIndices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DistanceEpsilon = 50
	cfg.CuttingThreshold = 10
	path := []network.EdgeRef{{EdgeListId: 0, EdgeId: 0}}
	m := 10
	matches := make([]PointMatch, m)
	for i := range matches {
		matches[i] = PointMatch{DistanceToEdge: 0}
	}
	// worst match at the very first index, which must be filtered out
	// (idx > 1 required).
	matches[0] = PointMatch{DistanceToEdge: 200}
	// a near-epsilon match at an interior index, which must survive.
	matches[5] = PointMatch{DistanceToEdge: 45}

	cps := cuttingPoints(path, matches, m, cfg)
	assert.Contains(t, cps, 5)
	assert.NotContains(t, cps, 0)
}
