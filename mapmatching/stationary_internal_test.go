package mapmatching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/network"
)

func pointAt(x, y float64) MapMatchingPoint {
	return MapMatchingPoint{Coord: network.Point{X: x, Y: y}}
}

func TestCompressStationaryEmptyTrace(t *testing.T) {
	sc := compressStationary(nil, 1.0)
	assert.Empty(t, sc.Sub)
	assert.Empty(t, sc.sourceForOriginal)
}

func TestCompressStationaryNoRunsIsIdentity(t *testing.T) {
	trace := MapMatchingTrace{pointAt(0, 0), pointAt(1, 0), pointAt(2, 0)}
	// epsilon of 0 means no two distinct points ever compress together.
	sc := compressStationary(trace, 0)
	require.Len(t, sc.Sub, 3)
	assert.Equal(t, []int{0, 1, 2}, sc.subToOriginal)
	assert.Equal(t, []int{0, 1, 2}, sc.sourceForOriginal)
}

func TestCompressStationaryCollapsesRun(t *testing.T) {
	trace := MapMatchingTrace{
		pointAt(0, 0),
		pointAt(0, 0),
		pointAt(0, 0),
		pointAt(1, 0),
	}
	// any nonzero epsilon collapses exact duplicates.
	sc := compressStationary(trace, 1.0)
	require.Len(t, sc.Sub, 2)
	assert.Equal(t, []int{0, 3}, sc.subToOriginal)
	assert.Equal(t, []int{0, 0, 0, 1}, sc.sourceForOriginal)
}

func TestStationaryExpandPointCountInvariant(t *testing.T) {
	trace := MapMatchingTrace{
		pointAt(0, 0),
		pointAt(0, 0),
		pointAt(1, 0),
		pointAt(1, 0),
		pointAt(1, 0),
		pointAt(2, 0),
	}
	sc := compressStationary(trace, 1.0)
	require.Len(t, sc.Sub, 3)

	subMatches := make([]PointMatch, len(sc.Sub))
	for i := range subMatches {
		subMatches[i] = PointMatch{EdgeId: network.EdgeId(i)}
	}

	expanded := sc.expand(subMatches)
	require.Len(t, expanded, len(trace))
	assert.Equal(t, subMatches[0], expanded[0])
	assert.Equal(t, subMatches[0], expanded[1])
	assert.Equal(t, subMatches[1], expanded[2])
	assert.Equal(t, subMatches[1], expanded[3])
	assert.Equal(t, subMatches[1], expanded[4])
	assert.Equal(t, subMatches[2], expanded[5])
}
