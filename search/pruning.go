package search

import (
	"fmt"

	"github.com/NatLabRockies/routee-compass-go/label"
)

// prune removes every existing label at childLabel's vertex that
// childLabel Pareto-dominates, provided the existing label's node is
// prunable. Labels whose kind reports RequiresPruning() == false skip
// dominance entirely (e.g. the basic VertexLabel used alone). nextCost is
// childLabel's accumulated cost-to-reach from the Root, not just the
// incremental cost of the edge that produced it.
func (t *Tree) prune(childLabel label.Label, nextCost float64, labelModel label.Model) error {
	if !childLabel.RequiresPruning() {
		return nil
	}

	for _, prevLabel := range t.GetLabelsIter(childLabel.Vertex()) {
		node, ok := t.nodes[prevLabel]
		if !ok {
			return ErrMissingNodeForLabel
		}
		prevCost := node.CostToReach

		dominated, err := dominates(prevLabel, prevCost, childLabel, nextCost, labelModel)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPruningError, err)
		}
		if dominated {
			t.Remove(prevLabel)
		}
	}
	return nil
}

// dominates reports whether next (at cost nextCost) Pareto-dominates prev
// (at cost prevCost) under labelModel's ordering:
//   - label states are maximized, cost is minimized;
//   - Less  (prev worse than next in state): dominates iff nextCost <= prevCost;
//   - Equal (states tie): dominates iff nextCost < prevCost;
//   - Greater (prev better than next in state): never dominates.
func dominates(prev label.Label, prevCost float64, next label.Label, nextCost float64, labelModel label.Model) (bool, error) {
	ordering, err := labelModel.Compare(prev, next)
	if err != nil {
		return false, err
	}
	switch ordering {
	case label.Less:
		return nextCost <= prevCost, nil
	case label.Equal:
		return nextCost < prevCost, nil
	default: // label.Greater
		return false, nil
	}
}
