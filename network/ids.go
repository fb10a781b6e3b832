package network

import "fmt"

// VertexId is a dense, opaque integer identifying a vertex in the Graph.
type VertexId int64

// String implements fmt.Stringer.
func (v VertexId) String() string { return fmt.Sprintf("v%d", int64(v)) }

// EdgeId is a dense, opaque integer identifying an edge within one EdgeListId.
// Invariant: (EdgeListId, EdgeId) uniquely identifies a directed edge.
type EdgeId int64

// String implements fmt.Stringer.
func (e EdgeId) String() string { return fmt.Sprintf("e%d", int64(e)) }

// EdgeListId identifies one parallel edge-list layer of the network, e.g. a
// car network and a bike network sharing the same vertex set.
type EdgeListId int64

// String implements fmt.Stringer.
func (l EdgeListId) String() string { return fmt.Sprintf("el%d", int64(l)) }

// EdgeRef names one directed edge unambiguously: its edge list plus its
// edge id within that list.
type EdgeRef struct {
	EdgeListId EdgeListId
	EdgeId     EdgeId
}
