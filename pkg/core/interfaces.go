package core

import "math/rand"

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Sampler is the source of randomness for stochastic sampling.
// *rand.Rand satisfies it; tests can substitute fixed sequences.
type Sampler interface {
	Float64() float64
}

// NewSampler creates a deterministic Sampler from a seed
func NewSampler(seed int64) Sampler {
	return rand.New(rand.NewSource(seed))
}
