package integrator

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/material"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// Light is the spherical lamp the RayTracer evaluates direct lighting
// against.
type Light struct {
	Position core.Vec3
	Emission core.Radiance
	Radius   float64
}

// NewLight creates a spherical light of the given radius.
func NewLight(position core.Vec3, emission core.Radiance, radius float64) Light {
	return Light{Position: position, Emission: emission, Radius: radius}
}

// RayTracer renders each pixel with a Phong-style direct lighting model
// against a single light. It is noise-free and fast but captures no
// indirect illumination, shadows, or reflections.
type RayTracer struct {
	light Light
}

// NewRayTracer creates a ray tracer lit by the given light.
func NewRayTracer(light Light) *RayTracer {
	return &RayTracer{light: light}
}

// Render computes direct lighting for the surface visible through the pixel.
func (rt *RayTracer) Render(s *scene.Scene, cam camera.Camera, resolution camera.Resolution, target camera.Target) core.Radiance {
	ray := cam.Primary(resolution, target)

	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background()
	}

	return rt.phong(ray, hit.Intersection, hit.BSDF)
}

func (rt *RayTracer) phong(ray core.Ray, intersection core.Intersection, bsdf material.BSDF) core.Radiance {
	toLight := rt.light.Position.Subtract(intersection.Position)
	incidence := toLight.Normalize()
	coverage := math.Atan(rt.light.Radius/toLight.Length()) * 0.5 / math.Pi

	projected := intersection.Normal.Multiply(intersection.Normal.Dot(ray.Direction))
	reflected := ray.Direction.Subtract(projected.Multiply(2)).Normalize()

	cosTNormal := incidence.Dot(intersection.Normal)
	cosTRay := incidence.Dot(reflected)

	radiance := core.Radiance{}

	for _, effect := range bsdf.Effects {
		switch effect.Kind {
		case material.Emission:
			radiance = radiance.Add(effect.Radiance.Scale(effect.Distribution.Eval(cosTNormal)))

		case material.DiffuseReflection:
			if cosTNormal > 0 {
				lit := rt.light.Emission.Attenuate(effect.Albedo)
				radiance = radiance.Add(lit.Scale(cosTNormal * coverage * effect.Distribution.Eval(cosTNormal)))
			}

		case material.SpecularReflection:
			if cosTRay > 0 {
				lit := rt.light.Emission.Attenuate(effect.Albedo)
				radiance = radiance.Add(lit.Scale(cosTNormal * coverage * effect.Distribution.Eval(cosTRay)))
			}
		}
	}

	return radiance
}
