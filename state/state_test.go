package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/state"
)

func testModel(t *testing.T) *state.StateModel {
	t.Helper()
	m, err := state.NewModel([]state.Variable{
		{Name: "distance", Unit: state.UnitMeters, Accumulator: true},
		{Name: "time", Unit: state.UnitSeconds, Accumulator: true},
		{Name: "speed", Unit: state.UnitMetersPerSecond, Accumulator: false},
	})
	require.NoError(t, err)
	return m
}

func TestNewModelRejectsDuplicates(t *testing.T) {
	_, err := state.NewModel([]state.Variable{
		{Name: "distance"},
		{Name: "distance"},
	})
	assert.ErrorIs(t, err, state.ErrDuplicateVariable)
}

func TestIndexOfUnknown(t *testing.T) {
	m := testModel(t)
	_, err := m.IndexOf("energy")
	assert.ErrorIs(t, err, state.ErrUnknownVariable)
}

func TestGetSetRoundTrip(t *testing.T) {
	m := testModel(t)
	vec := m.InitialState()

	vec, err := m.Set(vec, "distance", 42)
	require.NoError(t, err)
	vec, err = m.Set(vec, "speed", 13.4)
	require.NoError(t, err)

	got, err := m.Get(vec, "distance")
	require.NoError(t, err)
	assert.Equal(t, state.StateVariable(42), got)

	got, err = m.Get(vec, "speed")
	require.NoError(t, err)
	assert.Equal(t, state.StateVariable(13.4), got)
}

func TestSetDoesNotMutateOriginal(t *testing.T) {
	m := testModel(t)
	vec := m.InitialState()
	next, err := m.Set(vec, "distance", 10)
	require.NoError(t, err)

	assert.Equal(t, state.StateVariable(0), vec[0])
	assert.Equal(t, state.StateVariable(10), next[0])
}

func TestVectorLengthMismatch(t *testing.T) {
	m := testModel(t)
	_, err := m.Get(state.StateVector{1, 2}, "distance")
	assert.ErrorIs(t, err, state.ErrVectorLengthMismatch)
}

func TestDelta(t *testing.T) {
	m := testModel(t)
	prev := state.StateVector{0, 0, 0}
	next := state.StateVector{100, 10, 10}

	d, err := m.Delta(prev, next)
	require.NoError(t, err)
	assert.Equal(t, state.StateVector{100, 10, 10}, d)
}

func TestCloneIndependence(t *testing.T) {
	v := state.StateVector{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	assert.Equal(t, state.StateVariable(1), v[0])
}
