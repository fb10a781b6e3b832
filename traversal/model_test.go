package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/internal/fixture"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
	"github.com/NatLabRockies/routee-compass-go/traversal"
)

func testModel(t *testing.T) (*state.StateModel, *fixture.Grid) {
	t.Helper()
	m, err := state.NewModel([]state.Variable{
		{Name: "distance", Unit: state.UnitMeters, Accumulator: true},
		{Name: "speed", Unit: state.UnitMetersPerSecond},
		{Name: "time", Unit: state.UnitSeconds, Accumulator: true},
	})
	require.NoError(t, err)
	return m, fixture.BuildGrid()
}

func TestDistanceModelAccumulates(t *testing.T) {
	m, grid := testModel(t)
	dm, err := traversal.NewDistanceModel(m, "distance")
	require.NoError(t, err)

	ref := network.EdgeRef{EdgeListId: 0, EdgeId: grid.CoordOf[[2]int{0, 0}]}
	prev := m.InitialState()
	next, err := dm.TraverseEdge(grid.Graph, ref, prev)
	require.NoError(t, err)
	assert.Greater(t, float64(next[0]), 0.0)
}

func TestDistanceModelEstimateRemainingIsHaversine(t *testing.T) {
	m, _ := testModel(t)
	dm, err := traversal.NewDistanceModel(m, "distance")
	require.NoError(t, err)

	est, err := dm.EstimateRemaining(network.Point{X: -105.0, Y: 40.0}, network.Point{X: -104.9, Y: 40.0})
	require.NoError(t, err)
	assert.Greater(t, float64(est[0]), 0.0)
}

func TestSpeedModelRejectsNonPositiveSpeed(t *testing.T) {
	m, _ := testModel(t)
	sm, err := traversal.NewSpeedModel(m, "speed", traversal.ConstantSpeed(0))
	require.NoError(t, err)
	_, err = sm.TraverseEdge(nil, network.EdgeRef{}, m.InitialState())
	assert.ErrorIs(t, err, traversal.ErrMissingSpeed)
}

func TestCombinedComposesSpeedThenTime(t *testing.T) {
	m, grid := testModel(t)
	dm, err := traversal.NewDistanceModel(m, "distance")
	require.NoError(t, err)
	sm, err := traversal.NewSpeedModel(m, "speed", traversal.ConstantSpeed(10))
	require.NoError(t, err)
	tm, err := traversal.NewTimeModel(m, "time", "speed", 30)
	require.NoError(t, err)

	combined, err := traversal.NewCombined(m, []traversal.Model{dm, sm, tm})
	require.NoError(t, err)

	ref := network.EdgeRef{EdgeListId: 0, EdgeId: grid.CoordOf[[2]int{0, 0}]}
	next, err := combined.TraverseEdge(grid.Graph, ref, m.InitialState())
	require.NoError(t, err)

	distance, err := m.Get(next, "distance")
	require.NoError(t, err)
	timeVal, err := m.Get(next, "time")
	require.NoError(t, err)

	assert.InDelta(t, float64(distance)/10.0, float64(timeVal), 1e-9)
}

func TestCombinedRejectsEmptySubModels(t *testing.T) {
	m, _ := testModel(t)
	_, err := traversal.NewCombined(m, nil)
	assert.ErrorIs(t, err, traversal.ErrNoModelsConfigured)
}
