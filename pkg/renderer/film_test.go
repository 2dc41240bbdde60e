package renderer

import (
	"image/color"
	"testing"

	"github.com/ennocramer/lucifer/pkg/camera"
	"github.com/ennocramer/lucifer/pkg/core"
)

func TestFilmStartsBlack(t *testing.T) {
	film := NewFilm(4, 3)

	if film.Width() != 4 || film.Height() != 3 {
		t.Fatalf("Expected 4x3 film, got %dx%d", film.Width(), film.Height())
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if film.At(x, y) != (core.Radiance{}) {
				t.Errorf("Pixel (%d, %d): expected black, got %v", x, y, film.At(x, y))
			}
		}
	}
}

func TestFilmSetAt(t *testing.T) {
	film := NewFilm(2, 2)
	want := core.NewRadiance(1, 2, 3)

	film.Set(1, 0, want)

	if got := film.At(1, 0); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got := film.At(0, 1); got != (core.Radiance{}) {
		t.Errorf("Expected other pixels untouched, got %v", got)
	}
}

func TestFilmImage(t *testing.T) {
	film := NewFilm(3, 1)
	film.Set(0, 0, core.RadianceGray(0.5))
	film.Set(1, 0, core.RadianceGray(2))
	film.Set(2, 0, core.NewRadiance(-1, 0, 1))

	img := film.Image(camera.Linear(), 1)

	tests := []struct {
		x    int
		want color.RGBA
	}{
		{0, color.RGBA{128, 128, 128, 255}},
		{1, color.RGBA{255, 255, 255, 255}},
		{2, color.RGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("Pixel %d: expected %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestFilmImageExposure(t *testing.T) {
	film := NewFilm(1, 1)
	film.Set(0, 0, core.RadianceGray(0.25))

	img := film.Image(camera.Linear(), 2)

	want := color.RGBA{128, 128, 128, 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFilmImageGamma(t *testing.T) {
	film := NewFilm(1, 1)
	film.Set(0, 0, core.RadianceGray(0.25))

	img := film.Image(camera.Gamma(2), 1)

	want := color.RGBA{128, 128, 128, 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
