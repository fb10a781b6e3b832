package access

import "github.com/NatLabRockies/routee-compass-go/network"

// Model gates whether the search driver may traverse nextEdge, optionally
// arriving via prevEdge (nil at the start of a search, where turn
// restrictions do not apply). Implementations must be side-effect free:
// the driver calls Admissible before spending any Traversal/Cost Model
// work on an edge, so a false result must be cheap.
type Model interface {
	Admissible(prevEdge *network.EdgeRef, nextEdge network.EdgeRef) (bool, error)
}

// Composite chains several Models, admitting an edge only if every
// sub-model admits it. Sub-models are evaluated in order and evaluation
// stops at the first rejection.
type Composite struct {
	models []Model
}

// NewComposite builds a Composite over models, evaluated in order.
func NewComposite(models ...Model) *Composite {
	return &Composite{models: append([]Model(nil), models...)}
}

func (c *Composite) Admissible(prevEdge *network.EdgeRef, nextEdge network.EdgeRef) (bool, error) {
	for _, m := range c.models {
		ok, err := m.Admissible(prevEdge, nextEdge)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

var _ Model = (*Composite)(nil)
