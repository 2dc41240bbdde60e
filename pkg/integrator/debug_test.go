package integrator

import (
	"testing"

	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/geometry"
	"github.com/ennocramer/lucifer/pkg/material"
	"github.com/ennocramer/lucifer/pkg/scene"
)

func TestDebugRendererMissReturnsBackground(t *testing.T) {
	background := core.NewRadiance(0.1, 0.2, 0.3)
	s := scene.NewScene(background)
	cam := fixedCamera{ray: core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))}

	dr := NewDebugRenderer()
	resolution, target := onePixel()

	got := dr.Render(s, cam, resolution, target)
	if !radiancesEqual(got, background, epsilon) {
		t.Errorf("Expected background %v, got %v", background, got)
	}
}

func TestDebugRendererShowsNormalAndDistance(t *testing.T) {
	s := scene.NewScene(core.Radiance{})
	s.Add(scene.NewObject(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1),
		material.NewLambert(core.AlbedoWhite()),
		core.Identity(),
	))

	dr := NewDebugRenderer()
	resolution, target := onePixel()

	tests := []struct {
		name string
		ray  core.Ray
		want core.Radiance
	}{
		{
			// Hit (0, 0, 1) at distance 4: normal +z, brightness 5/9.
			name: "front",
			ray:  core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			want: core.NewRadiance(0.5*5.0/9.0, 0.5*5.0/9.0, 1.0*5.0/9.0),
		},
		{
			// Hit (-1, 0, 0) at distance 4: normal -x maps to zero red.
			name: "side",
			ray:  core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
			want: core.NewRadiance(0, 0.5*5.0/9.0, 0.5*5.0/9.0),
		},
		{
			// Hit at distance 10, beyond the brightness falloff.
			name: "far",
			ray:  core.NewRay(core.NewVec3(0, 0, 11), core.NewVec3(0, 0, -1)),
			want: core.Radiance{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dr.Render(s, fixedCamera{ray: tt.ray}, resolution, target)
			if !radiancesEqual(got, tt.want, epsilon) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderersImplementRenderer(t *testing.T) {
	var _ Renderer = &PathTracer{}
	var _ Renderer = &RayTracer{}
	var _ Renderer = &DebugRenderer{}
}
