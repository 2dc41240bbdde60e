package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"anti-commutative", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	const tolerance = 1e-9
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if v.Subtract(NewVec3(0.6, 0.8, 0)).Length() > tolerance {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// Degenerate input must not produce NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)

	for i, expected := range []float64{1, 2, 3} {
		if got := v.Axis(i); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", i, expected, got)
		}
	}

	if got := v.WithAxis(1, 9); got != NewVec3(1, 9, 3) {
		t.Errorf("WithAxis: expected (1,9,3), got %v", got)
	}
	if v != NewVec3(1, 2, 3) {
		t.Error("WithAxis must not mutate the receiver")
	}
}
