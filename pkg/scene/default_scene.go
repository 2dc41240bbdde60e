package scene

import (
	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/geometry"
	"github.com/ennocramer/lucifer/pkg/material"
)

// NewDefaultScene creates a small open scene: a glossy sphere resting
// above a gray floor, lit by a spherical lamp and a dim sky
func NewDefaultScene() (*Scene, camera.AffineCamera) {
	s := NewScene(core.NewRadiance(0.05, 0.06, 0.08))

	// Materials
	glossy := material.NewPhong().
		Color(core.NewAlbedo(0.7, 0.3, 0.25)).
		Highlight(core.AlbedoGray(0.8), 40)
	floor := material.NewLambert(core.AlbedoGray(0.8))
	lamp := material.NewBlackbody(core.RadianceGray(20))

	s.Add(NewObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 1), glossy, core.Identity()))
	s.Add(NewObject(geometry.NewPlane(core.NewVec3(0, 1, 0), -1), floor, core.Identity()))
	s.Add(NewObject(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1.5),
		lamp,
		core.Translate(core.NewVec3(3, 4, 2)),
	))

	cam := camera.NewAffineCamera(camera.LookAt(
		core.NewVec3(0, 1.5, 4),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
	))

	return s, cam
}
