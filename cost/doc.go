// Package cost maps state-variable deltas produced by a traversal into the
// scalar costs the search frontier orders on. A Cost is a single named
// scalar; a TraversalCost bundles the objective cost that drives search
// priority with the total cost that gets reported to the caller. A
// CostModel is the pluggable function from a state delta to a TraversalCost.
package cost

import "errors"

// Sentinel errors for cost model construction and evaluation.
var (
	// ErrUnknownWeight indicates a cost model was configured with a state
	// variable name that does not exist in its StateModel.
	ErrUnknownWeight = errors.New("cost: unknown weighted state variable")

	// ErrNoWeights indicates a CostModel was built with an empty weight set.
	ErrNoWeights = errors.New("cost: no weights configured")

	// ErrNegativeCost indicates a computed objective or total cost came out
	// negative, which would break the search frontier's priority invariant.
	ErrNegativeCost = errors.New("cost: computed cost is negative")
)
