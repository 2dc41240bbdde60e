package integrator

import (
	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
	"github.com/ennocramer/lucifer/pkg/scene"
)

// Renderer computes the radiance arriving at a single pixel of the image.
//
// Implementations are free to keep per-pixel state (samplers, statistics),
// so a Renderer should not be shared across goroutines without external
// coordination.
type Renderer interface {
	// Render computes the color of the pixel identified by target within
	// an image of the given resolution.
	Render(s *scene.Scene, cam camera.Camera, resolution camera.Resolution, target camera.Target) core.Radiance
}
