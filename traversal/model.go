package traversal

import (
	"github.com/NatLabRockies/routee-compass-go/internal/geo"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// Model produces the next state vector for a single edge traversal and an
// admissible (never-overestimating) remaining-state estimate between two
// points, used as the A* heuristic h.
type Model interface {
	// StateModel returns the StateModel this Model reads and writes.
	StateModel() *state.StateModel

	// TraverseEdge computes the state vector after crossing the given edge,
	// starting from prev.
	TraverseEdge(g *network.Graph, ref network.EdgeRef, prev state.StateVector) (state.StateVector, error)

	// EstimateRemaining returns an admissible lower-bound state delta for
	// traveling from origin to destination, ignoring access constraints.
	EstimateRemaining(origin, destination network.Point) (state.StateVector, error)
}

// SpeedProvider supplies the traversal speed of a given edge in meters per
// second. Default models depend on this rather than loading a speed table
// from disk, since edge-table file I/O is a collaborator's concern.
type SpeedProvider interface {
	Speed(ref network.EdgeRef) (metersPerSecond float64, err error)
}

// ConstantSpeed is a SpeedProvider that returns the same speed for every
// edge, useful for tests and for graphs with no per-edge speed data.
type ConstantSpeed float64

func (c ConstantSpeed) Speed(network.EdgeRef) (float64, error) { return float64(c), nil }

var _ SpeedProvider = ConstantSpeed(0)

// DistanceModel tracks the single accumulator variable distanceVar (meters)
// by summing each traversed edge's linestring length. EstimateRemaining
// returns the haversine distance between origin and destination, which
// never overestimates the true road distance.
type DistanceModel struct {
	model       *state.StateModel
	distanceVar string
	varIndex    int
}

// NewDistanceModel builds a DistanceModel tracking distanceVar within
// model. Returns state.ErrUnknownVariable if distanceVar is not in model.
func NewDistanceModel(model *state.StateModel, distanceVar string) (*DistanceModel, error) {
	idx, err := model.IndexOf(distanceVar)
	if err != nil {
		return nil, err
	}
	return &DistanceModel{model: model, distanceVar: distanceVar, varIndex: idx}, nil
}

func (m *DistanceModel) StateModel() *state.StateModel { return m.model }

func (m *DistanceModel) TraverseEdge(g *network.Graph, ref network.EdgeRef, prev state.StateVector) (state.StateVector, error) {
	ls, err := g.LineString(ref.EdgeListId, ref.EdgeId)
	if err != nil {
		return nil, err
	}
	length, err := geo.LineStringLengthMeters(ls)
	if err != nil {
		return nil, err
	}
	next := prev.Clone()
	next[m.varIndex] += state.StateVariable(length)
	return next, nil
}

func (m *DistanceModel) EstimateRemaining(origin, destination network.Point) (state.StateVector, error) {
	out := m.model.InitialState()
	out[m.varIndex] = state.StateVariable(geo.HaversineMeters(origin, destination))
	return out, nil
}

// SpeedModel tracks an instantaneous speed variable (meters per second),
// overwriting it with the current edge's speed on every traversal.
// EstimateRemaining reports zero delta, since instantaneous variables are
// not meaningfully accumulated toward a target.
type SpeedModel struct {
	model    *state.StateModel
	speedVar string
	varIndex int
	speeds   SpeedProvider
}

// NewSpeedModel builds a SpeedModel tracking speedVar within model, reading
// speeds from speeds.
func NewSpeedModel(model *state.StateModel, speedVar string, speeds SpeedProvider) (*SpeedModel, error) {
	idx, err := model.IndexOf(speedVar)
	if err != nil {
		return nil, err
	}
	return &SpeedModel{model: model, speedVar: speedVar, varIndex: idx, speeds: speeds}, nil
}

func (m *SpeedModel) StateModel() *state.StateModel { return m.model }

func (m *SpeedModel) TraverseEdge(_ *network.Graph, ref network.EdgeRef, prev state.StateVector) (state.StateVector, error) {
	speed, err := m.speeds.Speed(ref)
	if err != nil {
		return nil, err
	}
	if speed <= 0 {
		return nil, ErrMissingSpeed
	}
	next := prev.Clone()
	next[m.varIndex] = state.StateVariable(speed)
	return next, nil
}

func (m *SpeedModel) EstimateRemaining(_, _ network.Point) (state.StateVector, error) {
	return m.model.InitialState(), nil
}

// TimeModel tracks an accumulator time variable (seconds), computed as edge
// length divided by the current speed variable's value. It composes with a
// SpeedModel (typically inside a Combined) so the speed is already up to
// date in prev when TraverseEdge runs.
type TimeModel struct {
	model        *state.StateModel
	timeVar      string
	timeIdx      int
	speedVar     string
	speedIdx     int
	fallbackKph  float64
}

// NewTimeModel builds a TimeModel tracking timeVar (seconds) by reading
// speedVar (meters per second) out of the state vector it is given.
// fallbackSpeedMps is used for EstimateRemaining's admissible estimate: it
// must be at least as fast as any edge speed the graph can produce, so
// haversine distance / fallbackSpeedMps never overestimates remaining time.
func NewTimeModel(model *state.StateModel, timeVar, speedVar string, fallbackSpeedMps float64) (*TimeModel, error) {
	timeIdx, err := model.IndexOf(timeVar)
	if err != nil {
		return nil, err
	}
	speedIdx, err := model.IndexOf(speedVar)
	if err != nil {
		return nil, err
	}
	return &TimeModel{
		model: model, timeVar: timeVar, timeIdx: timeIdx,
		speedVar: speedVar, speedIdx: speedIdx, fallbackKph: fallbackSpeedMps,
	}, nil
}

func (m *TimeModel) StateModel() *state.StateModel { return m.model }

func (m *TimeModel) TraverseEdge(g *network.Graph, ref network.EdgeRef, prev state.StateVector) (state.StateVector, error) {
	ls, err := g.LineString(ref.EdgeListId, ref.EdgeId)
	if err != nil {
		return nil, err
	}
	length, err := geo.LineStringLengthMeters(ls)
	if err != nil {
		return nil, err
	}
	speed := float64(prev[m.speedIdx])
	if speed <= 0 {
		return nil, ErrMissingSpeed
	}
	next := prev.Clone()
	next[m.timeIdx] += state.StateVariable(length / speed)
	return next, nil
}

func (m *TimeModel) EstimateRemaining(origin, destination network.Point) (state.StateVector, error) {
	out := m.model.InitialState()
	if m.fallbackKph > 0 {
		out[m.timeIdx] = state.StateVariable(geo.HaversineMeters(origin, destination) / m.fallbackKph)
	}
	return out, nil
}

// Combined composes several Models that share one StateModel into a single
// Model, applying each sub-model's TraverseEdge in sequence (so later
// models, like TimeModel, see earlier models' writes, like SpeedModel's
// speed) and taking the element-wise maximum of EstimateRemaining across
// all sub-models.
type Combined struct {
	model *state.StateModel
	subs  []Model
}

// NewCombined composes subs, all of which must share the same StateModel.
// Returns ErrNoModelsConfigured if subs is empty.
func NewCombined(model *state.StateModel, subs []Model) (*Combined, error) {
	if len(subs) == 0 {
		return nil, ErrNoModelsConfigured
	}
	return &Combined{model: model, subs: append([]Model(nil), subs...)}, nil
}

func (c *Combined) StateModel() *state.StateModel { return c.model }

func (c *Combined) TraverseEdge(g *network.Graph, ref network.EdgeRef, prev state.StateVector) (state.StateVector, error) {
	cur := prev
	for _, sub := range c.subs {
		next, err := sub.TraverseEdge(g, ref, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (c *Combined) EstimateRemaining(origin, destination network.Point) (state.StateVector, error) {
	total := c.model.InitialState()
	for _, sub := range c.subs {
		est, err := sub.EstimateRemaining(origin, destination)
		if err != nil {
			return nil, err
		}
		for i := range total {
			if est[i] > total[i] {
				total[i] = est[i]
			}
		}
	}
	return total, nil
}

var (
	_ Model = (*DistanceModel)(nil)
	_ Model = (*SpeedModel)(nil)
	_ Model = (*TimeModel)(nil)
	_ Model = (*Combined)(nil)
)
