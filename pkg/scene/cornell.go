package scene

import (
	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/geometry"
	"github.com/ennocramer/lucifer/pkg/material"
)

// NewCornellScene creates a classic Cornell box interior with an area
// light in the ceiling, a shiny sphere, and a tall diffuse block
func NewCornellScene() (*Scene, camera.AffineCamera) {
	s := NewScene(core.Radiance{})

	// Materials
	white := material.NewLambert(core.AlbedoGray(0.75))
	red := material.NewLambert(core.NewAlbedo(0.75, 0.25, 0.25))
	green := material.NewLambert(core.NewAlbedo(0.25, 0.75, 0.25))
	shiny := material.NewPhong().
		Color(core.AlbedoGray(0.2)).
		Highlight(core.AlbedoGray(0.7), 200)
	lamp := material.NewBlackbody(core.RadianceGray(15))

	// Room interior spanning x in [-1,1], y in [0,2], z in [-1,1], with
	// all wall normals facing inward
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(0, 1, 0), 0), white, core.Identity()))
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(0, -1, 0), -2), white, core.Identity()))
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(0, 0, 1), -1), white, core.Identity()))
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(1, 0, 0), -1), red, core.Identity()))
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(-1, 0, 0), -1), green, core.Identity()))

	// Ceiling light
	s.Add(NewObject(
		geometry.NewDisc(core.NewVec3(0, 1.99, 0), core.NewVec3(0, -1, 0), 0.4),
		lamp,
		core.Identity(),
	))

	// Contents. Sizes are baked into the geometry: nearest-hit distances
	// compare in object space.
	s.Add(NewObject(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.35),
		shiny,
		core.Translate(core.NewVec3(-0.45, 0.35, -0.35)),
	))
	s.Add(NewObject(
		geometry.NewCube(core.NewVec3(0, 0, 0), core.NewVec3(0.6, 1.2, 0.6)),
		white,
		core.Translate(core.NewVec3(0.4, 0.6, 0.25)).Mul(core.RotateY(0.3)),
	))

	cam := camera.NewAffineCamera(camera.LookAt(
		core.NewVec3(0, 1, 4),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
	))

	return s, cam
}
