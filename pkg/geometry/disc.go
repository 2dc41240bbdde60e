package geometry

import "github.com/ennocramer/lucifer/pkg/core"

// Disc represents a flat, two-dimensional disc
type Disc struct {
	Center core.Vec3
	Normal core.Vec3
	Radius float64
}

// NewDisc creates a disc with radius radius and surface normal normal,
// centered on center
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	return &Disc{Center: center, Normal: normal.Normalize(), Radius: radius}
}

// Intersect solves the disc's plane equation along the ray and keeps hits
// within the radius
func (d *Disc) Intersect(ray core.Ray) (core.Intersection, bool) {
	lo := d.Normal.Dot(ray.Origin.Subtract(d.Center))
	ld := d.Normal.Dot(ray.Direction)

	lambda := -lo / ld
	inside := ld > 0

	if lambda <= 0 {
		return core.Intersection{}, false
	}

	position := ray.At(lambda)
	if position.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return core.Intersection{}, false
	}

	normal := d.Normal
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

// Occlude reports whether the ray hits the disc
func (d *Disc) Occlude(ray core.Ray) bool {
	_, ok := d.Intersect(ray)
	return ok
}
