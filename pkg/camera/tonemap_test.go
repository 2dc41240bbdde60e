package camera

import (
	"math"
	"testing"
)

func TestTonemapLinear(t *testing.T) {
	tm := Linear()

	if got := tm.Apply(0.5); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
	// Linear does not compress out-of-range intensities.
	if got := tm.Apply(2); got != 2 {
		t.Errorf("Expected 2, got %v", got)
	}
}

func TestTonemapGamma(t *testing.T) {
	tests := []struct {
		gamma float64
		in    float64
		want  float64
	}{
		{2, 0, 0},
		{2, 0.25, 0.5},
		{2, 1, 1},
		{2.2, 1, 1},
	}

	for _, tt := range tests {
		if got := Gamma(tt.gamma).Apply(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Gamma(%v).Apply(%v): expected %v, got %v", tt.gamma, tt.in, tt.want, got)
		}
	}
}

func TestTonemapReinhard(t *testing.T) {
	tests := []struct {
		gamma float64
		in    float64
		want  float64
	}{
		{1, 0, 0},
		{1, 1, 0.5},
		{1, 3, 0.75},
		{2, 1, math.Sqrt(0.5)},
	}

	for _, tt := range tests {
		if got := Reinhard(tt.gamma).Apply(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Reinhard(%v).Apply(%v): expected %v, got %v", tt.gamma, tt.in, tt.want, got)
		}
	}
}

func TestTonemapFilmic(t *testing.T) {
	tm := Filmic()

	// The toe cuts off intensities up to 0.004.
	if got := tm.Apply(0); got != 0 {
		t.Errorf("Expected 0 at black, got %v", got)
	}
	if got := tm.Apply(0.004); got != 0 {
		t.Errorf("Expected 0 at the toe cutoff, got %v", got)
	}

	if got := tm.Apply(1); math.Abs(got-0.8412) > 1e-3 {
		t.Errorf("Expected about 0.8412 at full intensity, got %v", got)
	}

	// The shoulder compresses highlights but stays below white.
	if lo, hi := tm.Apply(2), tm.Apply(50); lo >= hi || hi >= 1 {
		t.Errorf("Expected monotonic compression below 1, got %v and %v", lo, hi)
	}
}
