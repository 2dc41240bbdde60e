package scene

import (
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/geometry"
	"github.com/ennocramer/lucifer/pkg/material"
)

// Object places a geometry into the scene with a specific material and a
// transformation matrix
type Object struct {
	Geometry         geometry.Geometry
	Material         material.Material
	Transform        core.Matrix4
	InverseTransform core.Matrix4
}

// NewObject creates a new object. It panics when the transform is not
// invertible.
func NewObject(geom geometry.Geometry, mat material.Material, transform core.Matrix4) *Object {
	inverse, ok := transform.Inverse()
	if !ok {
		panic("scene: object transform is not invertible")
	}

	return &Object{
		Geometry:         geom,
		Material:         mat,
		Transform:        transform,
		InverseTransform: inverse,
	}
}

// transformRay maps a world-space ray into the object's local space
func (o *Object) transformRay(ray core.Ray) core.Ray {
	return ray.Transform(o.InverseTransform)
}

// transformIntersection maps a local-space intersection back to world
// space. Normals transform by the inverse transpose, and the distance is
// recomputed so it measures world-space travel.
func (o *Object) transformIntersection(ray core.Ray, intersection core.Intersection) core.Intersection {
	position := o.Transform.TransformPoint(intersection.Position)
	normal := o.InverseTransform.Transpose().TransformVector(intersection.Normal).Normalize()

	return core.Intersection{
		Position: position,
		Normal:   normal,
		Lambda:   position.Subtract(ray.Origin).Length(),
		Inside:   intersection.Inside,
	}
}

// ShadedIntersection pairs a world-space intersection with the surface
// appearance at the hit point
type ShadedIntersection struct {
	Intersection core.Intersection
	BSDF         material.BSDF
}

// Scene holds the renderable objects and the background radiance
type Scene struct {
	objects    []*Object
	background core.Radiance
}

// NewScene creates an empty scene with the given background radiance
func NewScene(background core.Radiance) *Scene {
	return &Scene{background: background}
}

// Background returns the radiance of rays that leave the scene
func (s *Scene) Background() core.Radiance {
	return s.background
}

// Add inserts an object into the scene
func (s *Scene) Add(object *Object) {
	s.objects = append(s.objects, object)
}

// Intersect returns the nearest shaded intersection along the ray, if any.
// Surfaces are shaded in object space, before the intersection is mapped
// back to world space.
func (s *Scene) Intersect(ray core.Ray) (ShadedIntersection, bool) {
	var nearest core.Intersection
	var nearestObject *Object

	for _, object := range s.objects {
		hit, ok := object.Geometry.Intersect(object.transformRay(ray))
		if !ok {
			continue
		}
		if nearestObject == nil || hit.Lambda < nearest.Lambda {
			nearest, nearestObject = hit, object
		}
	}

	if nearestObject == nil {
		return ShadedIntersection{}, false
	}

	return ShadedIntersection{
		Intersection: nearestObject.transformIntersection(ray, nearest),
		BSDF:         nearestObject.Material.Shade(nearest),
	}, true
}

// Occlude reports whether any object in the scene blocks the ray
func (s *Scene) Occlude(ray core.Ray) bool {
	for _, object := range s.objects {
		if object.Geometry.Occlude(object.transformRay(ray)) {
			return true
		}
	}

	return false
}
