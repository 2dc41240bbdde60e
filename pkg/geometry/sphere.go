package geometry

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/core"
)

// Sphere represents a sphere in 3D space
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect tests ray-sphere intersection by projecting the center onto the
// ray and comparing the squared radius against the squared distance between
// center and projection
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	alpha := s.Center.Subtract(ray.Origin).Dot(ray.Direction) / ray.Direction.LengthSquared()
	offset := ray.Origin.Add(ray.Direction.Multiply(alpha)).Subtract(s.Center)
	beta := s.Radius*s.Radius - offset.LengthSquared()

	if beta < 0 {
		return core.Intersection{}, false
	}

	gamma := math.Sqrt(beta / ray.Direction.LengthSquared())
	inside := gamma >= alpha

	lambda := alpha - gamma
	if inside {
		lambda = alpha + gamma
	}

	if lambda <= 0 {
		return core.Intersection{}, false
	}

	position := ray.At(lambda)
	normal := position.Subtract(s.Center).Divide(s.Radius)
	if inside {
		normal = normal.Negate()
	}

	return core.Intersection{
		Position: position,
		Normal:   normal,
		Lambda:   lambda,
		Inside:   inside,
	}, true
}

// Occlude reports whether the ray hits the sphere
func (s *Sphere) Occlude(ray core.Ray) bool {
	_, ok := s.Intersect(ray)
	return ok
}
