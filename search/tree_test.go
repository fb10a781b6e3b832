package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
	"github.com/NatLabRockies/routee-compass-go/state"
)

func traversal(objective float64) search.EdgeTraversal {
	return search.EdgeTraversal{
		EdgeListId:  0,
		EdgeId:      0,
		Cost:        cost.TraversalCost{ObjectiveCost: objective, TotalCost: objective},
		ResultState: state.StateVector{},
	}
}

func TestTreeSetRootOnlyOnce(t *testing.T) {
	tr := search.NewTree(network.Forward)
	require.NoError(t, tr.SetRoot(label.VertexLabel{V: 0}))
	err := tr.SetRoot(label.VertexLabel{V: 1})
	assert.ErrorIs(t, err, search.ErrRootAlreadySet)
}

func TestTreeInsertMissingParentFails(t *testing.T) {
	tr := search.NewTree(network.Forward)
	err := tr.Insert(label.VertexLabel{V: 99}, traversal(1), label.VertexLabel{V: 1}, label.VertexModel{})
	assert.ErrorIs(t, err, search.ErrMissingParent)
}

func TestTreeInsertIncrementsChildCount(t *testing.T) {
	tr := search.NewTree(network.Forward)
	root := label.VertexLabel{V: 0}
	require.NoError(t, tr.SetRoot(root))
	child := label.VertexLabel{V: 1}
	require.NoError(t, tr.Insert(root, traversal(1), child, label.VertexModel{}))

	rootNode, ok := tr.Get(root)
	require.True(t, ok)
	assert.Equal(t, 1, rootNode.ChildCount)
	assert.False(t, rootNode.Prunable())

	childNode, ok := tr.Get(child)
	require.True(t, ok)
	assert.True(t, childNode.Prunable())
}

func TestTreeRemoveOnlyPrunable(t *testing.T) {
	tr := search.NewTree(network.Forward)
	root := label.VertexLabel{V: 0}
	require.NoError(t, tr.SetRoot(root))
	child := label.VertexLabel{V: 1}
	require.NoError(t, tr.Insert(root, traversal(1), child, label.VertexModel{}))
	grandchild := label.VertexLabel{V: 2}
	require.NoError(t, tr.Insert(child, traversal(1), grandchild, label.VertexModel{}))

	// child has a live descendant: removal must be a silent no-op.
	tr.Remove(child)
	_, stillThere := tr.Get(child)
	assert.True(t, stillThere)

	tr.Remove(grandchild)
	_, gone := tr.Get(grandchild)
	assert.False(t, gone)
	childNode, _ := tr.Get(child)
	assert.Equal(t, 0, childNode.ChildCount)
	assert.True(t, childNode.Prunable())
}

func TestTreeBacktrackOrdersForwardAndReverse(t *testing.T) {
	for _, dir := range []network.Direction{network.Forward, network.Reverse} {
		tr := search.NewTree(dir)
		root := label.VertexLabel{V: 0}
		require.NoError(t, tr.SetRoot(root))
		a := label.VertexLabel{V: 1}
		require.NoError(t, tr.Insert(root, traversal(1), a, label.VertexModel{}))
		b := label.VertexLabel{V: 2}
		require.NoError(t, tr.Insert(a, traversal(2), b, label.VertexModel{}))

		route, err := tr.Backtrack(b)
		require.NoError(t, err)
		require.Len(t, route, 2)
		// A Forward tree's route runs from root to target; a Reverse tree's
		// route runs from target back toward the root, which is travel order
		// for a search that expanded backward from the destination.
		if dir == network.Forward {
			assert.Equal(t, 1.0, route[0].Cost.ObjectiveCost)
			assert.Equal(t, 2.0, route[1].Cost.ObjectiveCost)
		} else {
			assert.Equal(t, 2.0, route[0].Cost.ObjectiveCost)
			assert.Equal(t, 1.0, route[1].Cost.ObjectiveCost)
		}
	}
}

func TestTreeBacktrackMissingTarget(t *testing.T) {
	tr := search.NewTree(network.Forward)
	require.NoError(t, tr.SetRoot(label.VertexLabel{V: 0}))
	_, err := tr.Backtrack(label.VertexLabel{V: 42})
	assert.ErrorIs(t, err, search.ErrNoPathTo)
}

func TestTreeVertexIndexCoversNodeKeys(t *testing.T) {
	tr := search.NewTree(network.Forward)
	root := label.VertexLabel{V: 0}
	require.NoError(t, tr.SetRoot(root))
	a := label.VertexLabel{V: 1}
	require.NoError(t, tr.Insert(root, traversal(1), a, label.VertexModel{}))

	assert.ElementsMatch(t, []label.Label{a}, tr.GetLabelsIter(1))
	tr.Remove(a)
	assert.Empty(t, tr.GetLabelsIter(1))
}
