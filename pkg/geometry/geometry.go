package geometry

import "github.com/ennocramer/lucifer/pkg/core"

// Geometry is the interface for shapes that rays can hit
type Geometry interface {
	// Intersect returns the nearest intersection along the ray, if any
	Intersect(ray core.Ray) (core.Intersection, bool)
	// Occlude reports whether the ray hits the shape at all
	Occlude(ray core.Ray) bool
}
