package fixtures

import "math/rand"

// Option customizes a randomized fixture constructor by mutating a config
// before generation begins.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	c := config{rng: rand.New(rand.NewSource(1))}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithSeed creates a new *rand.Rand with the given seed, freezing a
// randomized fixture's output for tests and examples.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil: callers that bother
// to pass their own source want it honored, not silently ignored.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixtures: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
