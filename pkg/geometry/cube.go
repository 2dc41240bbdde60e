package geometry

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/core"
)

// Cube represents an axis-aligned box
type Cube struct {
	Center core.Vec3
	// Radius holds the per-axis half-extent. The cube spans
	// Center-Radius to Center+Radius.
	Radius core.Vec3
}

// NewCube creates a cube of size dimensions, centered on center
func NewCube(center, dimensions core.Vec3) *Cube {
	return &Cube{Center: center, Radius: dimensions.Multiply(0.5)}
}

// Intersect runs the slab method, tracking the latest entry and earliest
// exit across the three axis slabs so the normal follows from the winning
// axis and face. Zero direction components divide to infinities, which
// compare correctly against the finite slab distances.
func (c *Cube) Intersect(ray core.Ray) (core.Intersection, bool) {
	lin, linSign, linAxis := math.Inf(-1), 0.0, 0
	lout, loutSign, loutAxis := math.Inf(1), 0.0, 0

	for axis := 0; axis < 3; axis++ {
		near := (c.Center.Axis(axis) - c.Radius.Axis(axis) - ray.Origin.Axis(axis)) / ray.Direction.Axis(axis)
		far := (c.Center.Axis(axis) + c.Radius.Axis(axis) - ray.Origin.Axis(axis)) / ray.Direction.Axis(axis)

		entry, entrySign := far, 1.0
		if near < far {
			entry, entrySign = near, -1.0
		}
		if entry > lin {
			lin, linSign, linAxis = entry, entrySign, axis
		}

		exit, exitSign := far, 1.0
		if near > far {
			exit, exitSign = near, -1.0
		}
		if exit < lout {
			lout, loutSign, loutAxis = exit, exitSign, axis
		}
	}

	if lout < lin {
		return core.Intersection{}, false
	}

	inside := lin <= 0
	lambda, sign, axis := lin, linSign, linAxis
	if inside {
		lambda, sign, axis = lout, loutSign, loutAxis
	}

	if lambda <= 0 {
		return core.Intersection{}, false
	}

	normal := core.Vec3{}.WithAxis(axis, sign)
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

// Occlude reports whether the ray hits the cube
func (c *Cube) Occlude(ray core.Ray) bool {
	_, ok := c.Intersect(ray)
	return ok
}
