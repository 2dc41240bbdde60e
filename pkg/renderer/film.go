package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
)

// Film accumulates the radiance arriving at each pixel of a frame.
// Radiance is stored in full precision; Image develops it into a
// displayable picture.
type Film struct {
	width  int
	height int
	pixels []core.Radiance
}

// NewFilm creates a black film of the given size.
func NewFilm(width, height int) *Film {
	return &Film{
		width:  width,
		height: height,
		pixels: make([]core.Radiance, width*height),
	}
}

// Width returns the film width in pixels.
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels.
func (f *Film) Height() int { return f.height }

// Set records the radiance for one pixel.
func (f *Film) Set(x, y int, r core.Radiance) {
	f.pixels[y*f.width+x] = r
}

// At returns the radiance recorded for one pixel.
func (f *Film) At(x, y int) core.Radiance {
	return f.pixels[y*f.width+x]
}

// Image develops the film into an 8-bit image. Exposure scales the
// radiance before the tonemap compresses it into the displayable range.
func (f *Film) Image(tonemap camera.Tonemap, exposure float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r := f.At(x, y).Scale(exposure)
			img.SetRGBA(x, y, color.RGBA{
				R: toChannel(tonemap.Apply(r.R)),
				G: toChannel(tonemap.Apply(r.G)),
				B: toChannel(tonemap.Apply(r.B)),
				A: 255,
			})
		}
	}

	return img
}

// toChannel quantizes an intensity to 8 bits, clamping to [0, 1].
func toChannel(c float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(c, 0), 1) * 255))
}
