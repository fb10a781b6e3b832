package search

import (
	"github.com/NatLabRockies/routee-compass-go/access"
	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/traversal"
)

// Instance bundles the shared, read-only collaborators a query needs to
// run a search: the graph, the edge list to search over, and the
// traversal/cost/label/access models. Search Instances are assembled once
// per query (see the query package) and may be shared read-only across
// concurrently executing workers, since none of these fields are mutated
// by a search.
type Instance struct {
	Graph      *network.Graph
	EdgeListId network.EdgeListId
	Traversal  traversal.Model
	Cost       cost.Evaluator
	Label      label.Model
	Access     access.Model // nil means every edge is admissible
}

// Result is the outcome of a vertex-oriented search: the tree built and,
// when a target was reached, the backtracked route of edge traversals.
type Result struct {
	Tree  *Tree
	Route []EdgeTraversal
}

// RunVertex runs a vertex-oriented A* search from source. If target is
// non-nil, the search terminates as soon as that vertex is popped off the
// frontier (terminateOnTarget) or, when terminateOnTarget is false, once
// the frontier is otherwise exhausted having explored every vertex within
// reach. Result.Route is populated only when target is non-nil and was
// reached.
func RunVertex(inst *Instance, source network.VertexId, target *network.VertexId, dir network.Direction, terminateOnTarget bool) (*Result, error) {
	tree := NewTree(dir)
	frontier := NewFrontier()

	initialState := inst.Traversal.StateModel().InitialState()
	rootLabel := inst.Label.FromState(source, initialState)
	if err := tree.SetRoot(rootLabel); err != nil {
		return nil, err
	}

	h, err := heuristic(inst, source, target)
	if err != nil {
		return nil, err
	}
	frontier.Push(rootLabel, h)

	for {
		var popTarget *network.VertexId
		if terminateOnTarget {
			popTarget = target
		}
		fi, err := PopNew(frontier, source, popTarget, tree, initialState)
		if err != nil {
			return nil, err
		}
		if fi == nil {
			break
		}

		currentVertex := fi.PrevLabel.Vertex()
		edges, err := inst.Graph.Adjacent(inst.EdgeListId, currentVertex, dir)
		if err != nil {
			return nil, err
		}

		for _, edgeID := range edges {
			nextRef := network.EdgeRef{EdgeListId: inst.EdgeListId, EdgeId: edgeID}

			if inst.Access != nil {
				ok, err := inst.Access.Admissible(fi.PrevEdge, nextRef)
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

			nextLabel := inst.Label.FromState(nextVertex, nextState)
			et := EdgeTraversal{
				EdgeListId:  nextRef.EdgeListId,
				EdgeId:      nextRef.EdgeId,
				Cost:        traversalCost,
				ResultState: nextState,
			}

			if err := tree.Insert(fi.PrevLabel, et, nextLabel, inst.Label); err != nil {
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
		targetLabel := findReached(tree, *target)
		if targetLabel != nil {
			route, err := tree.Backtrack(*targetLabel)
			if err != nil {
				return nil, err
			}
			result.Route = route
		} else if terminateOnTarget {
			return nil, &NoPathExistsError{Source: source, Target: *target, TreeLen: tree.Len()}
		}
	}
	return result, nil
}

// findReached returns the label recorded at vertex v in tree, if any. Used
// to resolve the backtrack target after the frontier reports the target
// vertex was popped (PopNew itself does not return the popped label).
func findReached(tree *Tree, v network.VertexId) *label.Label {
	labels := tree.GetLabelsIter(v)
	if len(labels) == 0 {
		return nil
	}
	return &labels[0]
}

// heuristic returns g's admissible h contribution: 0 when there is no
// target, otherwise the traversal model's estimated remaining objective
// cost from v to the target vertex, expressed via the same cost model so
// it is commensurate with accumulated g.
func heuristic(inst *Instance, v network.VertexId, target *network.VertexId) (float64, error) {
	if target == nil {
		return 0, nil
	}
	from, err := inst.Graph.Vertex(v)
	if err != nil {
		return 0, err
	}
	to, err := inst.Graph.Vertex(*target)
	if err != nil {
		return 0, err
	}
	estState, err := inst.Traversal.EstimateRemaining(from, to)
	if err != nil {
		return 0, err
	}
	zero := inst.Traversal.StateModel().InitialState()
	estCost, err := inst.Cost.Evaluate(zero, estState)
	if err != nil {
		return 0, err
	}
	return estCost.ObjectiveCost, nil
}

// edgeTargetVertex resolves the vertex an expansion step lands on: the
// edge's destination in Forward direction, its source in Reverse.
func edgeTargetVertex(inst *Instance, ref network.EdgeRef, _ network.VertexId, dir network.Direction) (network.VertexId, error) {
	src, dst, err := inst.Graph.Endpoints(ref.EdgeListId, ref.EdgeId)
	if err != nil {
		return 0, err
	}
	if dir == network.Forward {
		return dst, nil
	}
	return src, nil
}
