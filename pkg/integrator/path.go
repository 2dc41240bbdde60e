package integrator

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/material"
	"github.com/ennocramer/lucifer/pkg/montecarlo"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// PathTracer renders pixels with unidirectional Monte Carlo path tracing.
// Each pixel averages Samples independent light paths. A path ends when it
// leaves the scene, reaches DepthLimit bounces, or its potential
// contribution falls below ContributionLimit.
type PathTracer struct {
	sampler           core.Sampler
	ContributionLimit float64
	DepthLimit        int
	Samples           int
}

// NewPathTracer creates a path tracer drawing randomness from sampler.
func NewPathTracer(sampler core.Sampler, contributionLimit float64, depthLimit, samples int) *PathTracer {
	return &PathTracer{
		sampler:           sampler,
		ContributionLimit: contributionLimit,
		DepthLimit:        depthLimit,
		Samples:           samples,
	}
}

// secondary spawns a continuation ray, nudged off the surface to avoid
// immediate self-intersection.
func secondary(origin, direction core.Vec3) core.Ray {
	return core.NewRay(origin.Add(direction.Multiply(0.0001)), direction)
}

// Render estimates the radiance for one pixel by averaging Samples paths.
func (pt *PathTracer) Render(s *scene.Scene, cam camera.Camera, resolution camera.Resolution, target camera.Target) core.Radiance {
	var estimate montecarlo.Estimator

	for i := 0; i < pt.Samples; i++ {
		estimate.Add(pt.trace(s, cam.Primary(resolution, target), core.AlbedoWhite(), 0))
	}

	return estimate.Value()
}

func (pt *PathTracer) trace(s *scene.Scene, ray core.Ray, contribution core.Albedo, depth int) montecarlo.Sample {
	if depth >= pt.DepthLimit || contribution.LumaFactor() < pt.ContributionLimit {
		return montecarlo.Certain(core.Radiance{})
	}

	hit, ok := s.Intersect(ray)
	if !ok {
		return montecarlo.Certain(s.Background())
	}

	intersection := hit.Intersection
	cosTView := -ray.Direction.Dot(intersection.Normal)

	sample := montecarlo.Certain(core.Radiance{})

	for _, effect := range hit.BSDF.Effects {
		switch effect.Kind {
		case material.Emission:
			emitted := effect.Radiance.Scale(effect.Distribution.Eval(cosTView))
			sample = sample.Add(montecarlo.Certain(emitted))

		case material.DiffuseReflection:
			sample = sample.Add(pt.bounce(s, effect, intersection.Position, intersection.Normal, cosTView, contribution, depth))

		case material.SpecularReflection:
			projected := intersection.Normal.Multiply(intersection.Normal.Dot(ray.Direction))
			reflected := ray.Direction.Subtract(projected.Multiply(2)).Normalize()
			sample = sample.Add(pt.bounce(s, effect, intersection.Position, reflected, cosTView, contribution, depth))

		case material.DiffuseRefraction:
			sample = sample.Add(pt.bounce(s, effect, intersection.Position, intersection.Normal.Negate(), cosTView, contribution, depth))

		case material.SpecularRefraction:
			panic("integrator: specular refraction is not implemented")
		}
	}

	return sample
}

// bounce draws one secondary direction around axis from the effect's
// distribution and recursively gathers the radiance arriving through it.
func (pt *PathTracer) bounce(s *scene.Scene, effect material.Effect, position, axis core.Vec3, cosTView float64, contribution core.Albedo, depth int) montecarlo.Sample {
	v, prob := effect.Distribution.Sample(pt.sampler)
	cosTIn := v.Z
	factor := effect.Albedo.Scale(cosTIn * effect.Distribution.Eval(cosTView))

	incidence := material.AlignToAxis(axis, v)
	incoming := pt.trace(s, secondary(position, incidence), contribution.Mul(factor), depth+1)

	return incoming.Attenuate(factor, prob*2*math.Pi)
}
