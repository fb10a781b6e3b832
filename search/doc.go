// Package search implements the labeled search tree, dominance pruning,
// frontier bridging, and the A* driver itself (vertex- and edge-oriented).
// A SearchTree is created per query and destroyed once the response is
// serialized; it is never shared across queries.
package search

import "errors"

// Sentinel errors for search tree, pruning, and driver operations.
var (
	// ErrRootAlreadySet indicates SetRoot was called on a tree that already
	// has a Root node.
	ErrRootAlreadySet = errors.New("search: root already set")

	// ErrMissingParent indicates Insert referenced a parent label absent
	// from the tree.
	ErrMissingParent = errors.New("search: missing parent label")

	// ErrMissingNodeForLabel indicates a label present in the vertex index
	// had no corresponding node in the tree (an integrity violation).
	ErrMissingNodeForLabel = errors.New("search: missing node for label")

	// ErrNoPathTo indicates Backtrack was called with a target label absent
	// from the tree.
	ErrNoPathTo = errors.New("search: no path to target")

	// ErrPruningError wraps a label model comparison failure encountered
	// during dominance pruning.
	ErrPruningError = errors.New("search: pruning error")
)
