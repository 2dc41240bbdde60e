package montecarlo

import (
	"testing"

	"github.com/ennocramer/lucifer/pkg/core"
)

func TestEstimatorMeanOfConstantSamples(t *testing.T) {
	var e Estimator
	for i := 0; i < 4; i++ {
		e.Add(Certain(core.RadianceGray(2)))
	}

	if got := e.Value(); !radiancesEqual(got, core.RadianceGray(2)) {
		t.Errorf("Expected mean (2,2,2), got %v", got)
	}
}

func TestEstimatorMean(t *testing.T) {
	var e Estimator
	e.Add(Certain(core.NewRadiance(1, 0, 3)))
	e.Add(Certain(core.NewRadiance(3, 2, 1)))

	if got := e.Value(); !radiancesEqual(got, core.NewRadiance(2, 1, 2)) {
		t.Errorf("Expected mean (2,1,2), got %v", got)
	}
}

func TestEstimatorWeighsByProbability(t *testing.T) {
	var e Estimator
	e.Add(NewSample(core.RadianceGray(1), 0.5))

	if got := e.Value(); !radiancesEqual(got, core.RadianceGray(2)) {
		t.Errorf("Expected probability-weighted value (2,2,2), got %v", got)
	}
}

func TestEstimatorPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic from empty estimator")
		}
	}()

	var e Estimator
	e.Value()
}
