package query

import (
	"fmt"

	"github.com/NatLabRockies/routee-compass-go/access"
	"github.com/NatLabRockies/routee-compass-go/cost"
	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/search"
	"github.com/NatLabRockies/routee-compass-go/traversal"
)

// EdgeListOverride configures a non-default traversal/access model for one
// edge list layer (recovered from original_source/'s
// edge_list_search_config.rs, supplementing spec §3's multi-edge-list
// graph with the per-layer query override it implies, e.g. a car edge
// list searched with DistanceModel and a bike edge list searched with a
// TimeModel over different speeds).
type EdgeListOverride struct {
	EdgeListId network.EdgeListId
	Traversal  traversal.Model
	Access     access.Model // nil keeps the instance-wide default
}

// InstanceConfig gathers the already-built collaborators a Search Instance
// needs. Parsing raw query parameters into these collaborators is the
// model-builder Registry's job; InstanceConfig is what Assemble consumes
// once that parsing is done.
type InstanceConfig struct {
	Graph          *network.Graph
	DefaultListId  network.EdgeListId
	Traversal      traversal.Model
	Cost           cost.Evaluator
	Label          label.Model
	Access         access.Model // nil means every edge is admissible
	EdgeListOverrides []EdgeListOverride
}

// Assemble builds a search.Instance for cfg.DefaultListId, unless an
// EdgeListOverride names that same list id, in which case the override's
// Traversal/Access models are used instead.
func Assemble(cfg InstanceConfig) (*search.Instance, error) {
	if cfg.Graph == nil {
		return nil, fmt.Errorf("query: assembling search instance: nil graph")
	}

	inst := &search.Instance{
		Graph:      cfg.Graph,
		EdgeListId: cfg.DefaultListId,
		Traversal:  cfg.Traversal,
		Cost:       cfg.Cost,
		Label:      cfg.Label,
		Access:     cfg.Access,
	}

	for _, o := range cfg.EdgeListOverrides {
		if o.EdgeListId != cfg.DefaultListId {
			continue
		}
		if o.Traversal != nil {
			inst.Traversal = o.Traversal
		}
		if o.Access != nil {
			inst.Access = o.Access
		}
	}

	return inst, nil
}
