package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
)

func TestVertexModelAlwaysEqual(t *testing.T) {
	m := label.VertexModel{}
	a := m.FromState(1, nil)
	b := m.FromState(2, nil)
	ord, err := m.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, label.Equal, ord)
	assert.False(t, a.RequiresPruning())
}

func TestVertexModelRejectsForeignLabel(t *testing.T) {
	m := label.VertexModel{}
	_, err := m.Compare(label.VertexLabel{V: 1}, label.VertexWithIntState{V: 1, State: 5})
	assert.ErrorIs(t, err, label.ErrIncomparableLabels)
}

func testIntModel(t *testing.T) *label.IntStateModel {
	t.Helper()
	sm, err := state.NewModel([]state.Variable{{Name: "soc", Unit: state.UnitRatio}})
	require.NoError(t, err)
	m, err := label.NewIntStateModel(sm, "soc", 0.1)
	require.NoError(t, err)
	return m
}

func TestIntStateModelQuantizesAndOrders(t *testing.T) {
	m := testIntModel(t)

	low := m.FromState(1, state.StateVector{0.3})
	high := m.FromState(1, state.StateVector{0.8})

	ord, err := m.Compare(low, high)
	require.NoError(t, err)
	assert.Equal(t, label.Less, ord)

	ord, err = m.Compare(high, low)
	require.NoError(t, err)
	assert.Equal(t, label.Greater, ord)

	require.True(t, high.RequiresPruning())
}

func TestIntStateModelEqualBucket(t *testing.T) {
	m := testIntModel(t)
	a := m.FromState(1, state.StateVector{0.31})
	b := m.FromState(1, state.StateVector{0.39})
	ord, err := m.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, label.Equal, ord)
}

func TestLabelsAreValidMapKeys(t *testing.T) {
	seen := map[label.Label]bool{}
	seen[label.VertexLabel{V: network.VertexId(1)}] = true
	seen[label.VertexWithIntState{V: network.VertexId(1), State: 3}] = true
	assert.Len(t, seen, 2)
}
