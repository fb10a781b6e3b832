package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/state"
)

func testStateModel(t *testing.T) *state.StateModel {
	t.Helper()
	m, err := state.NewModel([]state.Variable{
		{Name: "distance", Unit: state.UnitMeters, Accumulator: true},
		{Name: "time", Unit: state.UnitSeconds, Accumulator: true},
	})
	require.NoError(t, err)
	return m
}

func TestNewCostModelRejectsEmptyWeights(t *testing.T) {
	m := testStateModel(t)
	_, err := cost.NewCostModel(m, nil)
	assert.ErrorIs(t, err, cost.ErrNoWeights)
}

func TestNewCostModelRejectsUnknownVariable(t *testing.T) {
	m := testStateModel(t)
	_, err := cost.NewCostModel(m, []cost.Weight{{Variable: "energy", Factor: 1}})
	assert.ErrorIs(t, err, cost.ErrUnknownWeight)
}

func TestEvaluateLinearCombination(t *testing.T) {
	m := testStateModel(t)
	cm, err := cost.NewCostModel(m, []cost.Weight{
		{Variable: "distance", Factor: 1.0},
		{Variable: "time", Factor: 0.1},
	})
	require.NoError(t, err)

	prev := state.StateVector{0, 0}
	next := state.StateVector{100, 20}

	tc, err := cm.Evaluate(prev, next)
	require.NoError(t, err)
	assert.InDelta(t, 102.0, tc.ObjectiveCost, 1e-9)
	assert.InDelta(t, 102.0, tc.TotalCost, 1e-9)
	require.Len(t, tc.Costs, 2)
	assert.Equal(t, "distance", tc.Costs[0].Name)
	assert.InDelta(t, 100.0, tc.Costs[0].Value, 1e-9)
}

func TestEvaluateRejectsNegativeCost(t *testing.T) {
	m := testStateModel(t)
	cm, err := cost.NewCostModel(m, []cost.Weight{{Variable: "distance", Factor: 1.0}})
	require.NoError(t, err)

	_, err = cm.Evaluate(state.StateVector{100, 0}, state.StateVector{0, 0})
	assert.ErrorIs(t, err, cost.ErrNegativeCost)
}

func TestTraversalCostAdd(t *testing.T) {
	a := cost.TraversalCost{ObjectiveCost: 1, TotalCost: 1, Costs: []cost.Cost{{Name: "distance", Value: 1}}}
	b := cost.TraversalCost{ObjectiveCost: 2, TotalCost: 2, Costs: []cost.Cost{{Name: "distance", Value: 2}, {Name: "time", Value: 5}}}

	sum := a.Add(b)
	assert.InDelta(t, 3, sum.ObjectiveCost, 1e-9)
	require.Len(t, sum.Costs, 2)
	assert.InDelta(t, 3, sum.Costs[0].Value, 1e-9)
	assert.InDelta(t, 5, sum.Costs[1].Value, 1e-9)
}
