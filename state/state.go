package state

// StateVariable is a single 64-bit floating-point value in a StateVector.
type StateVariable float64

// StateVector is an ordered sequence of StateVariable values whose positions
// are defined by a StateModel. StateVectors are value-cheap to clone (a
// plain slice copy).
type StateVector []StateVariable

// Clone returns an independent copy of v.
func (v StateVector) Clone() StateVector {
	out := make(StateVector, len(v))
	copy(out, v)
	return out
}

// Unit describes the physical quantity a state variable position carries.
// It is metadata only; the search/cost/traversal models agree out-of-band
// on how to interpret a given unit's numeric value.
type Unit string

// Units recognized across the default traversal/cost models.
const (
	UnitMeters         Unit = "meters"
	UnitMiles          Unit = "miles"
	UnitKilometers     Unit = "kilometers"
	UnitSeconds        Unit = "seconds"
	UnitHours          Unit = "hours"
	UnitMetersPerSecond Unit = "meters_per_second"
	UnitKph             Unit = "kph"
	UnitMph             Unit = "mph"
	UnitRatio           Unit = "ratio"
	UnitGallonsGas      Unit = "gallons_gasoline"
	UnitKwh             Unit = "kilowatt_hours"
	UnitCount           Unit = "count"
)

// Variable describes one named, unit-tagged position in a StateModel.
type Variable struct {
	// Name uniquely identifies this position within its StateModel.
	Name string
	// Unit documents the physical quantity stored at this position.
	Unit Unit
	// Accumulator marks a position whose value monotonically grows across a
	// traversal (e.g. trip distance, trip time) as opposed to an
	// instantaneous quantity (e.g. current speed, current SOC). Summary
	// operations default differently for the two kinds (see query.SummaryOp).
	Accumulator bool
}

// StateModel fixes the ordered, named layout of every StateVector produced
// by a given Search Instance. It is built once at setup and shared
// read-only by every query that instance serves.
type StateModel struct {
	vars    []Variable
	indexOf map[string]int
}

// NewModel builds a StateModel from an ordered list of variables. Returns
// ErrDuplicateVariable if two variables share a name.
func NewModel(vars []Variable) (*StateModel, error) {
	indexOf := make(map[string]int, len(vars))
	for i, v := range vars {
		if _, exists := indexOf[v.Name]; exists {
			return nil, ErrDuplicateVariable
		}
		indexOf[v.Name] = i
	}
	return &StateModel{vars: append([]Variable(nil), vars...), indexOf: indexOf}, nil
}

// Len returns the number of positions in the model.
func (m *StateModel) Len() int { return len(m.vars) }

// Variables returns the ordered variable descriptors. The returned slice
// must not be mutated.
func (m *StateModel) Variables() []Variable { return m.vars }

// IndexOf returns the position of name, or ErrUnknownVariable.
func (m *StateModel) IndexOf(name string) (int, error) {
	idx, ok := m.indexOf[name]
	if !ok {
		return 0, ErrUnknownVariable
	}
	return idx, nil
}

// Get reads the named variable out of vec.
func (m *StateModel) Get(vec StateVector, name string) (StateVariable, error) {
	idx, err := m.IndexOf(name)
	if err != nil {
		return 0, err
	}
	if err := m.validate(vec); err != nil {
		return 0, err
	}
	return vec[idx], nil
}

// Set writes the named variable into vec, returning a new vector (vec is
// not mutated in place).
func (m *StateModel) Set(vec StateVector, name string, value StateVariable) (StateVector, error) {
	idx, err := m.IndexOf(name)
	if err != nil {
		return nil, err
	}
	if err := m.validate(vec); err != nil {
		return nil, err
	}
	out := vec.Clone()
	out[idx] = value
	return out, nil
}

// InitialState returns a zero-valued StateVector sized for this model.
func (m *StateModel) InitialState() StateVector {
	return make(StateVector, len(m.vars))
}

// Delta returns next minus prev position-wise. Both vectors must already
// match this model's length.
func (m *StateModel) Delta(prev, next StateVector) (StateVector, error) {
	if err := m.validate(prev); err != nil {
		return nil, err
	}
	if err := m.validate(next); err != nil {
		return nil, err
	}
	out := make(StateVector, len(m.vars))
	for i := range out {
		out[i] = next[i] - prev[i]
	}
	return out, nil
}

func (m *StateModel) validate(vec StateVector) error {
	if len(vec) != len(m.vars) {
		return ErrVectorLengthMismatch
	}
	return nil
}
