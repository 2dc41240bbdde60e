package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 3, 4))

	const tolerance = 1e-9
	if math.Abs(ray.Direction.Length()-1.0) > tolerance {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
	if ray.Direction.Subtract(NewVec3(0, 0.6, 0.8)).Length() > tolerance {
		t.Errorf("Expected direction (0,0.6,0.8), got %v", ray.Direction)
	}
	if !math.IsInf(ray.Length, 1) {
		t.Errorf("Expected infinite length, got %f", ray.Length)
	}
}

func TestNewRayTo_FiniteLength(t *testing.T) {
	ray := NewRayTo(NewVec3(1, 0, 0), NewVec3(1, 0, 5))

	if math.Abs(ray.Length-5.0) > 1e-9 {
		t.Errorf("Expected length 5, got %f", ray.Length)
	}
	if ray.Direction != NewVec3(0, 0, 1) {
		t.Errorf("Expected direction (0,0,1), got %v", ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	if got := ray.At(4); got != NewVec3(1, 2, 7) {
		t.Errorf("Expected (1,2,7), got %v", got)
	}
}

func TestRay_Transform_FoldsScaleIntoLength(t *testing.T) {
	ray := NewRayTo(NewVec3(0, 0, 0), NewVec3(0, 0, 2))

	// Scaling space by 3 stretches the travelled distance by 3 while the
	// direction stays a unit vector.
	scaled := ray.Transform(UniformScale(3))

	const tolerance = 1e-9
	if math.Abs(scaled.Direction.Length()-1.0) > tolerance {
		t.Errorf("Expected unit direction, got length %f", scaled.Direction.Length())
	}
	if math.Abs(scaled.Length-6.0) > tolerance {
		t.Errorf("Expected length 6, got %f", scaled.Length)
	}
	if scaled.Origin != NewVec3(0, 0, 0) {
		t.Errorf("Expected unchanged origin, got %v", scaled.Origin)
	}
}

func TestRay_Transform_Translation(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	moved := ray.Transform(Translate(NewVec3(0, 5, 0)))

	if moved.Origin != NewVec3(0, 5, 0) {
		t.Errorf("Expected origin (0,5,0), got %v", moved.Origin)
	}
	if moved.Direction != NewVec3(1, 0, 0) {
		t.Errorf("Expected direction unchanged, got %v", moved.Direction)
	}
	if !math.IsInf(moved.Length, 1) {
		t.Errorf("Expected infinite length, got %f", moved.Length)
	}
}
