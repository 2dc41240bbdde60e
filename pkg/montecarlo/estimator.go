package montecarlo

import "github.com/ennocramer/lucifer/pkg/core"

// Estimator accumulates probability-weighted samples and reports their
// mean. The zero value is an empty estimator.
type Estimator struct {
	value core.Radiance
	n     int
}

// Add records one sample, weighting its value by the inverse of its
// probability
func (e *Estimator) Add(sample Sample) {
	e.value = e.value.Add(sample.Value.Scale(1 / sample.Probability))
	e.n++
}

// Value returns the mean of the recorded samples. It panics when no
// samples have been recorded.
func (e *Estimator) Value() core.Radiance {
	if e.n == 0 {
		panic("montecarlo: estimator has no samples")
	}
	return e.value.Scale(1 / float64(e.n))
}
