package cost

import "github.com/NatLabRockies/routee-compass-go/state"

// Cost is a single named scalar cost, reported alongside the objective cost
// for diagnostics (e.g. "time_cost", "distance_cost" alongside the blended
// objective).
type Cost struct {
	Name  string
	Value float64
}

// TraversalCost bundles the cost of a single edge traversal. ObjectiveCost
// drives search priority (the frontier orders on it); TotalCost is the
// value reported back to the caller and may differ when a CostModel
// reports in different units than it searches on (e.g. minimizing time
// while reporting dollars).
type TraversalCost struct {
	ObjectiveCost float64
	TotalCost     float64
	Costs         []Cost
}

// Add returns the element-wise sum of two TraversalCosts. Named Costs with
// matching names are summed; costs unique to either side pass through.
func (c TraversalCost) Add(other TraversalCost) TraversalCost {
	out := TraversalCost{
		ObjectiveCost: c.ObjectiveCost + other.ObjectiveCost,
		TotalCost:     c.TotalCost + other.TotalCost,
	}
	byName := make(map[string]int, len(c.Costs))
	out.Costs = append(out.Costs, c.Costs...)
	for i, cc := range out.Costs {
		byName[cc.Name] = i
	}
	for _, cc := range other.Costs {
		if i, ok := byName[cc.Name]; ok {
			out.Costs[i].Value += cc.Value
		} else {
			byName[cc.Name] = len(out.Costs)
			out.Costs = append(out.Costs, cc)
		}
	}
	return out
}

// Weight is a single (state variable, coefficient) pair contributing to a
// CostModel's objective. The variable must exist in the StateModel the
// CostModel is built against.
type Weight struct {
	Variable string
	Factor   float64
}

// CostModel maps a traversal's state delta to a TraversalCost, by summing
// weighted state-variable deltas into a single objective and reporting each
// weighted contribution as a named Cost.
//
// This is the default linear-combination cost model. A Search Instance may
// substitute any type satisfying the same evaluation contract; CostModel
// here is the concrete default rather than an interface because the search
// package depends only on the Evaluate method signature, reproduced as the
// Evaluator interface below.
type CostModel struct {
	model   *state.StateModel
	weights []Weight
	indices []int
}

// Evaluator is the contract the search driver depends on: compute the
// TraversalCost of moving from prev to next state.
type Evaluator interface {
	Evaluate(prev, next state.StateVector) (TraversalCost, error)
}

// NewCostModel builds a linear-combination CostModel over model, weighting
// each named state variable delta by its configured factor. Returns
// ErrNoWeights if weights is empty, or ErrUnknownWeight if a weight names a
// variable not present in model.
func NewCostModel(model *state.StateModel, weights []Weight) (*CostModel, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	indices := make([]int, len(weights))
	for i, w := range weights {
		idx, err := model.IndexOf(w.Variable)
		if err != nil {
			return nil, ErrUnknownWeight
		}
		indices[i] = idx
	}
	return &CostModel{model: model, weights: append([]Weight(nil), weights...), indices: indices}, nil
}

// Evaluate computes the TraversalCost of the state delta from prev to next.
// Each weighted variable contributes Factor * delta to both the objective
// and a named Cost entry; ObjectiveCost and TotalCost are equal for the
// default linear model.
func (m *CostModel) Evaluate(prev, next state.StateVector) (TraversalCost, error) {
	delta, err := m.model.Delta(prev, next)
	if err != nil {
		return TraversalCost{}, err
	}

	out := TraversalCost{Costs: make([]Cost, len(m.weights))}
	for i, w := range m.weights {
		contribution := w.Factor * float64(delta[m.indices[i]])
		out.Costs[i] = Cost{Name: w.Variable, Value: contribution}
		out.ObjectiveCost += contribution
		out.TotalCost += contribution
	}
	if out.ObjectiveCost < 0 {
		return TraversalCost{}, ErrNegativeCost
	}
	return out, nil
}

var _ Evaluator = (*CostModel)(nil)
