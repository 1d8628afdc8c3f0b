package bitmap

import "math/rand/v2"

// Option configures Random.
//
// Example:
//
//	// Reproducible noise
//	img, err := bitmap.Random(640, 480, bitmap.WithSeed(42))
type Option func(*options)

// options holds optional configuration for Random.
type options struct {
	rng *rand.Rand
}

// defaultOptions returns options with a generator seeded from the runtime's
// random source, so each call produces different pixels.
func defaultOptions() options {
	return options{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithSeed makes Random deterministic: the same seed and dimensions always
// produce the same pixels.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the generator Random draws from. A nil generator is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}
