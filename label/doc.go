// Package label projects a (vertex, state) pair visited during search into
// a compact, comparable Label used as the search tree's key. A Model
// defines a partial order over label states so the driver can detect
// Pareto dominance without comparing full state vectors.
package label

import "errors"

// Sentinel errors for label comparison and construction.
var (
	// ErrIncomparableLabels indicates Compare was asked to order two labels
	// of different concrete kinds (e.g. a Vertex label against a
	// VertexWithIntState label), which is a configuration error: a single
	// search must use one label kind consistently.
	ErrIncomparableLabels = errors.New("label: labels are not of the same kind")
)
