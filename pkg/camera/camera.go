package camera

import "github.com/ennocramer/lucifer/pkg/core"

// Resolution is the pixel size of an image
type Resolution struct {
	Width  int
	Height int
}

// NewResolution creates a new resolution
func NewResolution(width, height int) Resolution {
	return Resolution{Width: width, Height: height}
}

// Target is a pixel position within an image buffer
type Target struct {
	X int
	Y int
}

// NewTarget creates a new target
func NewTarget(x, y int) Target {
	return Target{X: x, Y: y}
}

// Normalized maps the pixel coordinate to the unit square, such that the
// image covers the range [-1, +1] with +x to the right and +y to the top.
// Each pixel index maps to the floating point coordinate at the center of
// the pixel.
func (t Target) Normalized(resolution Resolution) (float64, float64) {
	stepX := 2.0 / float64(resolution.Width)
	stepY := 2.0 / float64(resolution.Height)
	fx := float64(t.X) * stepX
	fy := float64(t.Y) * stepY

	return fx - 1 + 0.5*stepX, 1 - fy - 0.5*stepY
}

// Camera generates the primary rays of a render
type Camera interface {
	// Primary constructs the ray that gathers the light reaching the given
	// target pixel in a render of the given resolution
	Primary(resolution Resolution, target Target) core.Ray
}

// AffineCamera is a camera model defined by a transformation matrix. The
// canonical film square [-1,1]^2 sits at z=-1 looking toward +z; the
// matrix maps it into the scene.
type AffineCamera struct {
	Transform core.Matrix4
}

// NewAffineCamera creates a camera with the given transformation matrix
func NewAffineCamera(transform core.Matrix4) AffineCamera {
	return AffineCamera{Transform: transform}
}

// Primary implements the Camera interface
func (c AffineCamera) Primary(resolution Resolution, target Target) core.Ray {
	fx, fy := target.Normalized(resolution)
	o := core.NewVec3(fx, fy, -1)
	t := o.Add(core.NewVec3(0, 0, 2))

	origin := c.Transform.TransformPoint(o)
	through := c.Transform.TransformPoint(t)

	return core.NewRay(origin, through.Subtract(origin))
}

// LookAt builds a camera matrix that places the film at eye, oriented
// toward center with up roughly along up. With an AffineCamera this gives
// a parallel projection over a 2x2 film square.
func LookAt(eye, center, up core.Vec3) core.Matrix4 {
	forward := center.Subtract(eye).Normalize()
	right := forward.Cross(up).Normalize()
	upward := right.Cross(forward)

	m := core.Identity()
	for axis := 0; axis < 3; axis++ {
		m.M[axis][0] = right.Axis(axis)
		m.M[axis][1] = upward.Axis(axis)
		m.M[axis][2] = forward.Axis(axis)
		m.M[axis][3] = eye.Axis(axis) + forward.Axis(axis)
	}

	return m
}
