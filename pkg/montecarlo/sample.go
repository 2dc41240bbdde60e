package montecarlo

import "github.com/ennocramer/lucifer/pkg/core"

// Sample couples a sampled radiance estimate with the probability with
// which it was drawn
type Sample struct {
	Value       core.Radiance
	Probability float64
}

// NewSample creates a sample with the given value and probability
func NewSample(value core.Radiance, probability float64) Sample {
	return Sample{Value: value, Probability: probability}
}

// Certain wraps a value that was obtained with probability one
func Certain(value core.Radiance) Sample {
	return Sample{Value: value, Probability: 1.0}
}

// Add combines two samples: values add and probabilities multiply
func (s Sample) Add(other Sample) Sample {
	return Sample{
		Value:       s.Value.Add(other.Value),
		Probability: s.Probability * other.Probability,
	}
}

// Attenuate scales the sample's value by factor and folds probability into
// the sample's own draw probability
func (s Sample) Attenuate(factor core.Albedo, probability float64) Sample {
	return Sample{
		Value:       s.Value.Attenuate(factor),
		Probability: s.Probability * probability,
	}
}
