// Package network defines the read-only directed multigraph that the search
// and map-matching subsystems traverse: dense integer vertex and edge
// identifiers, per-edge endpoints, vertex coordinates, and edge linestring
// geometry.
//
// A Graph is built once via Builder and then frozen; every lookup after that
// point is an O(1) slice index. Edges live in one of several parallel edge
// lists (EdgeListId) so that a single vertex set can carry layered networks,
// e.g. a car edge list and a bike edge list over the same intersections.
//
// Graph is safe for concurrent read access from many goroutines: nothing
// about a frozen Graph is ever mutated again, so no locking is required
// (compare to the teacher's core.Graph, which guards a mutable adjacency
// list with sync.RWMutex — here immutability stands in for that lock).
package network

import "errors"

// Sentinel errors returned by Graph lookups.
var (
	// ErrVertexNotFound indicates a VertexId has no corresponding vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrEdgeNotFound indicates an (EdgeListId, EdgeId) pair has no edge.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrEdgeListNotFound indicates an EdgeListId was never registered.
	ErrEdgeListNotFound = errors.New("network: edge list not found")

	// ErrDuplicateEdge indicates Builder.AddEdge was called twice for the
	// same (EdgeListId, EdgeId).
	ErrDuplicateEdge = errors.New("network: duplicate edge id in edge list")
)
