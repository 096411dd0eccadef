package builder

import (
	"errors"
	"math/rand"
)

// Sentinel errors for instance construction.
var (
	// ErrTooFewNodes indicates the requested node count is below the
	// minimum the topology can express.
	ErrTooFewNodes = errors.New("builder: node count too small")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG. Supply WithSeed or WithRand; the package never falls
	// back to hidden global randomness.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnknownMethod indicates ByMethod received a method name that is
	// neither MethodRandom nor MethodSlidingWindow.
	ErrUnknownMethod = errors.New("builder: unknown generation method")
)

// Method names accepted by ByMethod, matching the generator request format.
const (
	// MethodRandom selects the clustered geometric topology.
	MethodRandom = "random"

	// MethodSlidingWindow selects the linear windowed topology.
	MethodSlidingWindow = "sliding_window"
)

// builderConfig aggregates all knobs used by the constructors.
// It is passed by value so callers never observe mutation.
type builderConfig struct {
	// rng drives every stochastic choice; nil means "not supplied".
	rng *rand.Rand

	// name overrides the generated graph name when non-empty.
	name string
}

// Option customizes instance construction by mutating a builderConfig
// before generation begins.
type Option func(*builderConfig)

// WithSeed attaches a fresh deterministic RNG seeded with the given value.
// Use this in tests and fixtures to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG, allowing several constructions to share
// one stream. Panics on nil to surface the programming error immediately.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithName overrides the generated graph's display name.
func WithName(name string) Option {
	return func(c *builderConfig) {
		c.name = name
	}
}

// newBuilderConfig applies options in order over zero defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
