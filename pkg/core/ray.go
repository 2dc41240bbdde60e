package core

import "math"

// Ray represents a photon's potential path: an origin, a unit direction,
// and a maximum travel distance (usually +Inf)
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Length    float64
}

// NewRay creates an unbounded ray. The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Length:    math.Inf(1),
	}
}

// NewRayTo creates a finite ray from origin to target, with length equal
// to the distance between the two points
func NewRayTo(origin, target Vec3) Ray {
	distance := target.Subtract(origin)
	length := distance.Length()
	return Ray{
		Origin:    origin,
		Direction: distance.Divide(length),
		Length:    length,
	}
}

// At returns the point at parameter lambda along the ray
func (r Ray) At(lambda float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(lambda))
}

// Transform applies an affine transform to the ray. The direction stays
// normalized; its scale factor is folded into the length so the reach
// bound stays consistent in the transformed space.
func (r Ray) Transform(m Matrix4) Ray {
	origin := m.TransformPoint(r.Origin)
	direction := m.TransformVector(r.Direction)
	scale := direction.Length()

	return Ray{
		Origin:    origin,
		Direction: direction.Divide(scale),
		Length:    r.Length * scale,
	}
}

// Intersection describes the point where a ray meets a surface
type Intersection struct {
	Position Vec3    // Point of intersection
	Normal   Vec3    // Unit surface normal, flipped toward the ray
	Lambda   float64 // Distance from the ray origin, always positive
	Inside   bool    // Whether the ray hit the surface from behind
}
