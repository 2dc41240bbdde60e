package material

import "github.com/ennocramer/lucifer/pkg/core"

// Lambert is an ideal diffusely reflective material
type Lambert struct {
	Albedo core.Albedo
}

// NewLambert creates a new Lambertian material
func NewLambert(albedo core.Albedo) Lambert {
	return Lambert{Albedo: albedo}
}

// Shade implements the Material interface
func (l Lambert) Shade(_ core.Intersection) BSDF {
	return BSDF{Effects: []Effect{NewDiffuseReflection(l.Albedo, Cosine())}}
}
