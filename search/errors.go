package search

import (
	"fmt"

	"github.com/NatLabRockies/routee-compass-go/network"
)

// NoPathExistsError indicates the frontier was exhausted before the search
// reached Target, carrying the tree size at the point of failure for
// diagnostics.
type NoPathExistsError struct {
	Source  network.VertexId
	Target  network.VertexId
	TreeLen int
}

func (e *NoPathExistsError) Error() string {
	return fmt.Sprintf("search: no path exists between %s and %s (tree had %d nodes)", e.Source, e.Target, e.TreeLen)
}
