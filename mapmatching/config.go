package mapmatching

import (
	"github.com/go-playground/validator/v10"
)

var configValidate = validator.New()

// Config holds the LCSS pipeline's tunable parameters (spec §4.5). Zero
// values are never valid configuration on their own; use DefaultConfig or
// NewConfig with options, both of which apply the documented defaults.
type Config struct {
	// DistanceEpsilon is the LCSS similarity kernel's distance scale, in
	// meters: a point-to-edge distance of DistanceEpsilon contributes zero
	// similarity; distances below it contribute linearly up to 1.
	DistanceEpsilon float64 `validate:"gt=0"`

	// SimilarityCutoff is the minimum LCSS score a segment must reach
	// before the iterative refinement (step 6) stops trying to split it
	// further.
	SimilarityCutoff float64 `validate:"gte=0,lte=1"`

	// CuttingThreshold is the tolerance, in meters, used when flagging a
	// point's distance-to-edge as "near the epsilon boundary" for cutting
	// point selection.
	CuttingThreshold float64 `validate:"gt=0"`

	// RandomCuts is a reserved knob (spec §9 Open Questions): declared but
	// unused by the pipeline described here.
	RandomCuts int `validate:"gte=0"`

	// DistanceThreshold caps how far a trace point may be from its nearest
	// candidate edge before that point's match is recorded as +Inf.
	DistanceThreshold float64 `validate:"gt=0"`

	// DistanceUnit documents the unit DistanceEpsilon/CuttingThreshold/
	// DistanceThreshold are expressed in. All internal computation is in
	// meters; this field is metadata for the external query/response layer.
	DistanceUnit string `validate:"required"`

	// NearestCandidates bounds how many nearest edges are requested per
	// endpoint when building an initial path (spec §4.5 step 2: "up to 10").
	NearestCandidates int `validate:"gt=0"`

	// MaxSplitRounds bounds the iterative refinement loop (spec §4.5 step
	// 6: "up to 10 rounds").
	MaxSplitRounds int `validate:"gt=0"`

	// StationaryEpsilonMeters is the pairwise distance below which
	// consecutive points are considered the same stationary point (spec
	// §4.5 step 1: "< 1 mm").
	StationaryEpsilonMeters float64 `validate:"gt=0"`
}

// Option configures a Config built by NewConfig.
type Option func(*Config)

// WithDistanceEpsilon overrides the default 50 m similarity scale.
func WithDistanceEpsilon(meters float64) Option {
	return func(c *Config) { c.DistanceEpsilon = meters }
}

// WithSimilarityCutoff overrides the default 0.9 refinement cutoff.
func WithSimilarityCutoff(cutoff float64) Option {
	return func(c *Config) { c.SimilarityCutoff = cutoff }
}

// WithCuttingThreshold overrides the default 10 m cutting tolerance.
func WithCuttingThreshold(meters float64) Option {
	return func(c *Config) { c.CuttingThreshold = meters }
}

// WithRandomCuts sets the reserved random-cuts knob (unused by the
// pipeline; see Config.RandomCuts).
func WithRandomCuts(n int) Option {
	return func(c *Config) { c.RandomCuts = n }
}

// WithDistanceThreshold overrides the default 10 km match-distance cap.
func WithDistanceThreshold(meters float64) Option {
	return func(c *Config) { c.DistanceThreshold = meters }
}

// WithDistanceUnit overrides the reported distance unit (default "meters").
func WithDistanceUnit(unit string) Option {
	return func(c *Config) { c.DistanceUnit = unit }
}

// WithNearestCandidates overrides the default of 10 nearest-edge candidates.
func WithNearestCandidates(n int) Option {
	return func(c *Config) { c.NearestCandidates = n }
}

// WithMaxSplitRounds overrides the default of 10 refinement rounds.
func WithMaxSplitRounds(n int) Option {
	return func(c *Config) { c.MaxSplitRounds = n }
}

// DefaultConfig returns the spec §4.5 documented defaults.
func DefaultConfig() Config {
	return Config{
		DistanceEpsilon:         50,
		SimilarityCutoff:        0.9,
		CuttingThreshold:        10,
		RandomCuts:              0,
		DistanceThreshold:       10_000,
		DistanceUnit:            "meters",
		NearestCandidates:       10,
		MaxSplitRounds:          10,
		StationaryEpsilonMeters: 0.001,
	}
}

// NewConfig builds a Config starting from DefaultConfig and applying opts,
// then validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := configValidate.Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
