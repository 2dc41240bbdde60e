package geometry

import "github.com/ennocramer/lucifer/pkg/core"

// Plane represents an infinite plane satisfying Normal·P + Offset = 0
type Plane struct {
	Normal core.Vec3
	Offset float64
}

// NewPlane creates a plane with the given surface normal, at distance
// from the origin in the direction of the surface normal
func NewPlane(normal core.Vec3, distance float64) *Plane {
	return &Plane{Normal: normal.Normalize(), Offset: -distance}
}

// Intersect solves the plane equation along the ray
func (p *Plane) Intersect(ray core.Ray) (core.Intersection, bool) {
	lo := p.Normal.Dot(ray.Origin) + p.Offset
	ld := p.Normal.Dot(ray.Direction)

	lambda := -lo / ld
	inside := ld > 0

	if lambda <= 0 {
		return core.Intersection{}, false
	}

	normal := p.Normal
	if inside {
		normal = normal.Negate()
	}

	return core.Intersection{
		Position: ray.At(lambda),
		Normal:   normal,
		Lambda:   lambda,
		Inside:   inside,
	}, true
}

// Occlude reports whether the ray hits the plane
func (p *Plane) Occlude(ray core.Ray) bool {
	_, ok := p.Intersect(ray)
	return ok
}
