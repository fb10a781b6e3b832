package search

import (
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
)

// RunEdge runs an edge-oriented A* search rooted at source, an edge the
// caller is already positioned on (e.g. the nearest edge to a map-matching
// trace point). The root's label carries source itself as its
// "incoming edge" for admissibility purposes, so the very first expansion
// already evaluates turn restrictions against it. It is otherwise
// identical to RunVertex (spec §4.4): same frontier, pruning, and
// termination rules, but tree nodes are keyed by EdgeLabel instead of a
// vertex-only label, as required by LCSS spatial matching.
func RunEdge(inst *Instance, source network.EdgeRef, target *network.VertexId, dir network.Direction, terminateOnTarget bool) (*Result, error) {
	rootVertex, err := edgeTargetVertex(inst, source, 0, dir)
	if err != nil {
		return nil, err
	}

	tree := NewTree(dir)
	frontier := NewFrontier()

	initialState := inst.Traversal.StateModel().InitialState()
	rootState, err := inst.Traversal.TraverseEdge(inst.Graph, source, initialState)
	if err != nil {
		return nil, err
	}
	rootLabel := label.EdgeLabel{Ref: source, V: rootVertex}
	if err := tree.SetRoot(rootLabel); err != nil {
		return nil, err
	}

	h, err := heuristic(inst, rootVertex, target)
	if err != nil {
		return nil, err
	}
	frontier.Push(rootLabel, h)

	// The root already represents having traversed `source`; subsequent
	// admissibility checks treat it as the previous edge, and its result
	// state seeds expansion rather than the zero initial state.
	rootRef := source

	for {
		var popTarget *network.VertexId
		if terminateOnTarget {
			popTarget = target
		}
		fi, err := PopNew(frontier, rootVertex, popTarget, tree, rootState)
		if err != nil {
			return nil, err
		}
		if fi == nil {
			break
		}

		currentVertex := fi.PrevLabel.Vertex()
		prevEdge := fi.PrevEdge
		if prevEdge == nil {
			prevEdge = &rootRef
		}

		edges, err := inst.Graph.Adjacent(inst.EdgeListId, currentVertex, dir)
		if err != nil {
			return nil, err
		}

		for _, edgeID := range edges {
			nextRef := network.EdgeRef{EdgeListId: inst.EdgeListId, EdgeId: edgeID}

			if inst.Access != nil {
				ok, err := inst.Access.Admissible(prevEdge, nextRef)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
			}

			nextVertex, err := edgeTargetVertex(inst, nextRef, currentVertex, dir)
			if err != nil {
				return nil, err
			}

			nextState, err := inst.Traversal.TraverseEdge(inst.Graph, nextRef, fi.PrevState)
			if err != nil {
				return nil, err
			}

			traversalCost, err := inst.Cost.Evaluate(fi.PrevState, nextState)
			if err != nil {
				return nil, err
			}

			nextLabel := label.EdgeLabel{Ref: nextRef, V: nextVertex}
			et := EdgeTraversal{
				EdgeListId:  nextRef.EdgeListId,
				EdgeId:      nextRef.EdgeId,
				Cost:        traversalCost,
				ResultState: nextState,
			}

			if err := tree.Insert(fi.PrevLabel, et, nextLabel, label.EdgeModel{}); err != nil {
				return nil, err
			}

			g := 0.0
			if node, ok := tree.Get(nextLabel); ok {
				g = node.CostToReach
			}
			hNext, err := heuristic(inst, nextVertex, target)
			if err != nil {
				return nil, err
			}
			frontier.Push(nextLabel, g+hNext)
		}
	}

	result := &Result{Tree: tree}
	if target != nil {
		if targetLabel := findReached(tree, *target); targetLabel != nil {
			route, err := tree.Backtrack(*targetLabel)
			if err != nil {
				return nil, err
			}
			result.Route = route
		} else if terminateOnTarget {
			return nil, &NoPathExistsError{Source: rootVertex, Target: *target, TreeLen: tree.Len()}
		}
	}
	return result, nil
}
