package access

import "github.com/NatLabRockies/routee-compass-go/network"

// VehicleParameter is a named physical dimension of the vehicle making the
// query (e.g. "height_m", "weight_kg").
type VehicleParameter struct {
	Name  string
	Value float64
}

// EdgeLimit is a named maximum an edge imposes on one vehicle dimension.
type EdgeLimit struct {
	Name string
	Max  float64
}

// VehicleRestriction rejects edges whose recorded limits are exceeded by
// any of the query's vehicle parameters, recovered from the vehicle
// restriction constraint's per-edge limit rows and query parameter list.
type VehicleRestriction struct {
	limits map[network.EdgeRef][]EdgeLimit
	params map[string]float64
}

// NewVehicleRestriction builds a VehicleRestriction from a per-edge limit
// table and the vehicle's declared parameters. Returns
// ErrInvalidVehicleParameter if any parameter value is negative.
func NewVehicleRestriction(limits map[network.EdgeRef][]EdgeLimit, parameters []VehicleParameter) (*VehicleRestriction, error) {
	params := make(map[string]float64, len(parameters))
	for _, p := range parameters {
		if p.Value < 0 {
			return nil, ErrInvalidVehicleParameter
		}
		params[p.Name] = p.Value
	}
	return &VehicleRestriction{limits: limits, params: params}, nil
}

// Admissible rejects nextEdge iff any of its recorded limits is exceeded by
// a matching named vehicle parameter. Limits with no matching parameter,
// and edges with no recorded limits, are unconstrained.
func (v *VehicleRestriction) Admissible(_ *network.EdgeRef, nextEdge network.EdgeRef) (bool, error) {
	for _, limit := range v.limits[nextEdge] {
		value, ok := v.params[limit.Name]
		if !ok {
			continue
		}
		if value > limit.Max {
			return false, nil
		}
	}
	return true, nil
}

var _ Model = (*VehicleRestriction)(nil)
