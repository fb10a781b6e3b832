package label

import (
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// Ordering is the result of comparing two label states for dominance
// purposes. Label states are maximized: Greater means the left-hand label
// is strictly preferable on every compared dimension.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// Label is a compact, comparable projection of (vertex, state) used as the
// search tree's key. Concrete Label implementations must be valid Go map
// keys (no slices/maps/funcs in their field set).
type Label interface {
	// Vertex returns the graph vertex this label was recorded at.
	Vertex() network.VertexId

	// RequiresPruning reports whether labels of this kind participate in
	// dominance checks. The basic Vertex label, used alone, skips pruning
	// entirely since there is no secondary state to dominate on.
	RequiresPruning() bool
}

// VertexLabel is the simplest label: the vertex alone, with no auxiliary
// state summary. Two VertexLabels at the same vertex are always Equal and
// RequiresPruning reports false, since a vertex-only search tree keeps at
// most one label per vertex by construction.
type VertexLabel struct {
	V network.VertexId
}

func (l VertexLabel) Vertex() network.VertexId { return l.V }
func (l VertexLabel) RequiresPruning() bool     { return false }

// VertexWithIntState is a label carrying the vertex plus a compact integer
// summary of the traversal state (e.g. a quantized battery state of
// charge, or a discretized time-of-day bucket). Two labels at the same
// vertex with different State are treated as non-dominating candidates
// for each other until Model.Compare orders them.
type VertexWithIntState struct {
	V     network.VertexId
	State int64
}

func (l VertexWithIntState) Vertex() network.VertexId { return l.V }
func (l VertexWithIntState) RequiresPruning() bool     { return true }

// EdgeLabel keys a search tree node by the edge just traversed rather than
// by vertex alone, as required by the edge-oriented A* driver (spec §4.4):
// two arrivals at the same vertex via different edges are distinct labels,
// so turn-restriction-sensitive admissibility checks on the next expansion
// always see the correct previous edge. V is the vertex this label sits
// at (the edge's destination in a Forward search, its source in Reverse),
// used for the tree's vertex index.
type EdgeLabel struct {
	Ref network.EdgeRef
	V   network.VertexId
}

func (l EdgeLabel) Vertex() network.VertexId { return l.V }
func (l EdgeLabel) RequiresPruning() bool     { return false }

// EdgeModel is the Model for EdgeLabel: every pair of labels compares
// Equal and RequiresPruning is false, since dominance on the edge-keyed
// tree is driven entirely by distinct (edge, vertex) identity rather than
// by a secondary state summary.
type EdgeModel struct{}

func (EdgeModel) FromState(v network.VertexId, _ state.StateVector) Label {
	return EdgeLabel{V: v}
}

func (EdgeModel) Compare(a, b Label) (Ordering, error) {
	if _, ok := a.(EdgeLabel); !ok {
		return 0, ErrIncomparableLabels
	}
	if _, ok := b.(EdgeLabel); !ok {
		return 0, ErrIncomparableLabels
	}
	return Equal, nil
}

// Model is the pluggable contract between the search driver and a label
// kind: construct a Label from a visited (vertex, state) pair, and order
// two labels of that kind for dominance purposes.
type Model interface {
	// FromState projects a (vertex, state) pair into a Label.
	FromState(v network.VertexId, s state.StateVector) Label

	// Compare orders two labels produced by this model. Returns
	// ErrIncomparableLabels if a or b were not produced by this model.
	Compare(a, b Label) (Ordering, error)
}

// VertexModel is the Model for the basic VertexLabel kind. Every pair of
// labels at the same vertex compares Equal, and RequiresPruning is false,
// so the search tree never attempts dominance on vertex-only searches.
type VertexModel struct{}

func (VertexModel) FromState(v network.VertexId, _ state.StateVector) Label {
	return VertexLabel{V: v}
}

func (VertexModel) Compare(a, b Label) (Ordering, error) {
	if _, ok := a.(VertexLabel); !ok {
		return 0, ErrIncomparableLabels
	}
	if _, ok := b.(VertexLabel); !ok {
		return 0, ErrIncomparableLabels
	}
	return Equal, nil
}

// IntStateModel is a Model for VertexWithIntState labels that quantizes a
// single named state variable into an integer bucket via Resolution, and
// orders labels by that bucket (higher bucket is Greater, i.e. preferred).
type IntStateModel struct {
	stateModel *state.StateModel
	variable   string
	varIndex   int
	resolution float64
}

// NewIntStateModel builds an IntStateModel quantizing variable by dividing
// its value by resolution and truncating to an integer. Returns
// state.ErrUnknownVariable if variable is not in model.
func NewIntStateModel(model *state.StateModel, variable string, resolution float64) (*IntStateModel, error) {
	idx, err := model.IndexOf(variable)
	if err != nil {
		return nil, err
	}
	return &IntStateModel{stateModel: model, variable: variable, varIndex: idx, resolution: resolution}, nil
}

func (m *IntStateModel) FromState(v network.VertexId, s state.StateVector) Label {
	bucket := int64(float64(s[m.varIndex]) / m.resolution)
	return VertexWithIntState{V: v, State: bucket}
}

func (m *IntStateModel) Compare(a, b Label) (Ordering, error) {
	la, ok := a.(VertexWithIntState)
	if !ok {
		return 0, ErrIncomparableLabels
	}
	lb, ok := b.(VertexWithIntState)
	if !ok {
		return 0, ErrIncomparableLabels
	}
	switch {
	case la.State < lb.State:
		return Less, nil
	case la.State > lb.State:
		return Greater, nil
	default:
		return Equal, nil
	}
}

var (
	_ Model = VertexModel{}
	_ Model = (*IntStateModel)(nil)
	_ Model = EdgeModel{}
)
