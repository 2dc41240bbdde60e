package integrator

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// DebugRenderer visualizes the scene geometry instead of its lighting:
// surface normals map to color and hit distance to brightness. Handy for
// checking a scene layout without waiting for a full render.
type DebugRenderer struct{}

// NewDebugRenderer creates a debug renderer.
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// Render visualizes the surface visible through the pixel.
func (dr *DebugRenderer) Render(s *scene.Scene, cam camera.Camera, resolution camera.Resolution, target camera.Target) core.Radiance {
	ray := cam.Primary(resolution, target)

	hit, ok := s.Intersect(ray)
	if !ok {
		return s.Background()
	}

	return dr.visualize(hit.Intersection)
}

func (dr *DebugRenderer) visualize(intersection core.Intersection) core.Radiance {
	brightness := math.Min(math.Max(1-intersection.Lambda/9, 0), 1)
	color := intersection.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))

	return core.NewRadiance(color.X*brightness, color.Y*brightness, color.Z*brightness)
}
