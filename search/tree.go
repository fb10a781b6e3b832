package search

import (
	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// EdgeTraversal is the immutable record of crossing a single edge: the
// edge crossed, the cost of crossing it, and the state vector that results.
// Once inserted into a SearchTree, an EdgeTraversal is never mutated.
type EdgeTraversal struct {
	EdgeListId  network.EdgeListId
	EdgeId      network.EdgeId
	Cost        cost.TraversalCost
	ResultState state.StateVector
}

// Node is a SearchTree entry. A Root node has IncomingEdge == nil and
// ParentLabel's zero value is unused; a Branch node has both populated.
// ChildCount is the number of nodes in the tree whose ParentLabel equals
// this node's own label; a node is prunable iff ChildCount == 0.
type Node struct {
	IsRoot       bool
	IncomingEdge *EdgeTraversal
	ParentLabel  label.Label
	Direction    network.Direction
	ChildCount   int
	// CostToReach is the accumulated ObjectiveCost of the path from the
	// Root to this node, not just the last edge's incremental cost. The
	// A* frontier priority and Pareto dominance both compare this value.
	CostToReach float64
}

// Prunable reports whether this node may be safely removed from the tree
// without orphaning a live branch.
func (n *Node) Prunable() bool { return n.ChildCount == 0 }

// Tree is the label-keyed search tree built by a single A* query. It is
// created per query and discarded once the response is serialized; it is
// never shared across queries or goroutines.
type Tree struct {
	direction network.Direction
	nodes     map[label.Label]*Node
	byVertex  map[network.VertexId]map[label.Label]struct{}
	root      *label.Label
}

// NewTree creates an empty Tree exploring in direction.
func NewTree(direction network.Direction) *Tree {
	return &Tree{
		direction: direction,
		nodes:     make(map[label.Label]*Node),
		byVertex:  make(map[network.VertexId]map[label.Label]struct{}),
	}
}

// Direction reports the direction this tree explores in.
func (t *Tree) Direction() network.Direction { return t.direction }

// Len returns the number of nodes currently in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool { return len(t.nodes) == 0 }

// SetRoot establishes l as the tree's Root. Returns ErrRootAlreadySet if a
// Root already exists.
func (t *Tree) SetRoot(l label.Label) error {
	if t.root != nil {
		return ErrRootAlreadySet
	}
	root := l
	t.root = &root
	t.nodes[l] = &Node{IsRoot: true, Direction: t.direction}
	t.index(l)
	return nil
}

// Get returns the node stored for l, or (nil, false) if absent.
func (t *Tree) Get(l label.Label) (*Node, bool) {
	n, ok := t.nodes[l]
	return n, ok
}

// GetLabelsIter returns the labels recorded at vertex v, in no particular
// order.
func (t *Tree) GetLabelsIter(v network.VertexId) []label.Label {
	set := t.byVertex[v]
	out := make([]label.Label, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out
}

// Insert creates a Branch node for childLabel reached via traversal from
// parentLabel, increments the parent's child count, and registers
// childLabel under its vertex. Before insertion, dominance pruning (see
// prune) runs using labelModel: any existing label at childLabel's vertex
// that is Pareto-dominated by childLabel is removed if prunable.
//
// Returns ErrMissingParent if parentLabel is absent from the tree.
func (t *Tree) Insert(parentLabel label.Label, traversal EdgeTraversal, childLabel label.Label, labelModel label.Model) error {
	parent, ok := t.nodes[parentLabel]
	if !ok {
		return ErrMissingParent
	}

	costToReach := parent.CostToReach + traversal.Cost.ObjectiveCost

	if err := t.prune(childLabel, costToReach, labelModel); err != nil {
		return err
	}

	parent.ChildCount++
	t.nodes[childLabel] = &Node{
		IncomingEdge: &traversal,
		ParentLabel:  parentLabel,
		Direction:    t.direction,
		CostToReach:  costToReach,
	}
	t.index(childLabel)
	return nil
}

// Remove deletes the node for l only if it is prunable (ChildCount == 0).
// If l's parent is in the tree, the parent's child count is decremented.
// Silent no-op if l is absent or not prunable.
func (t *Tree) Remove(l label.Label) {
	node, ok := t.nodes[l]
	if !ok || !node.Prunable() {
		return
	}
	if !node.IsRoot {
		if parent, ok := t.nodes[node.ParentLabel]; ok {
			parent.ChildCount--
		}
	} else {
		t.root = nil
	}
	delete(t.nodes, l)
	t.unindex(l)
}

// Backtrack walks parent pointers from target to the Root, returning the
// ordered sequence of EdgeTraversal in forward order (reversed for a
// Reverse-direction tree, since such a tree was built walking backward from
// the destination). Returns ErrNoPathTo if target is not in the tree.
func (t *Tree) Backtrack(target label.Label) ([]EdgeTraversal, error) {
	node, ok := t.nodes[target]
	if !ok {
		return nil, ErrNoPathTo
	}

	var reversed []EdgeTraversal
	for !node.IsRoot {
		reversed = append(reversed, *node.IncomingEdge)
		var ok bool
		node, ok = t.nodes[node.ParentLabel]
		if !ok {
			return nil, ErrMissingNodeForLabel
		}
	}

	out := make([]EdgeTraversal, len(reversed))
	if t.direction == network.Reverse {
		copy(out, reversed)
	} else {
		for i, et := range reversed {
			out[len(reversed)-1-i] = et
		}
	}
	return out, nil
}

func (t *Tree) index(l label.Label) {
	v := l.Vertex()
	set, ok := t.byVertex[v]
	if !ok {
		set = make(map[label.Label]struct{})
		t.byVertex[v] = set
	}
	set[l] = struct{}{}
}

func (t *Tree) unindex(l label.Label) {
	v := l.Vertex()
	set, ok := t.byVertex[v]
	if !ok {
		return
	}
	delete(set, l)
	if len(set) == 0 {
		delete(t.byVertex, v)
	}
}
