package domain

import "math/rand/v2"

// NoiseSource supplies the random term for the synthesis formulas. It is an
// explicit dependency so callers decide seeding and tests can pin output.
type NoiseSource interface {
	// Normal draws from a normal distribution with the given mean and
	// standard deviation.
	Normal(mean, stddev float64) float64
}

// RandomNoise is a PCG-backed NoiseSource. Not safe for concurrent use;
// dataset generation happens on a single goroutine.
type RandomNoise struct {
	rng *rand.Rand
}

// NewRandomNoise creates a seeded noise source. The same seed yields the
// same draw sequence, making whole-dataset generation reproducible.
func NewRandomNoise(seed uint64) *RandomNoise {
	return &RandomNoise{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomNoise) Normal(mean, stddev float64) float64 {
	return mean + stddev*r.rng.NormFloat64()
}

// ZeroNoise returns the mean for every draw, reducing each formula to its
// deterministic trend. Used for regression tests and fixture export.
type ZeroNoise struct{}

func (ZeroNoise) Normal(mean, _ float64) float64 { return mean }
