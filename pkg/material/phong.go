package material

import "github.com/ennocramer/lucifer/pkg/core"

// Phong combines emission, diffuse reflection, and specular reflection
type Phong struct {
	Emission  core.Radiance
	Diffuse   core.Albedo
	Specular  core.Albedo
	Shininess float64
}

// NewPhong creates a Phong material with no emission, diffuse, or
// specular component. Components are added with Glow, Color, and
// Highlight.
func NewPhong() Phong {
	return Phong{}
}

// Glow returns the material with its emission set to color
func (m Phong) Glow(color core.Radiance) Phong {
	m.Emission = color
	return m
}

// Color returns the material with its diffuse reflection set to color
func (m Phong) Color(color core.Albedo) Phong {
	m.Diffuse = color
	return m
}

// Highlight returns the material with the given specular reflection color
// and exponent
func (m Phong) Highlight(color core.Albedo, shininess float64) Phong {
	m.Specular = color
	m.Shininess = shininess
	return m
}

// Shade implements the Material interface. Only components that have been
// set contribute effects.
func (m Phong) Shade(_ core.Intersection) BSDF {
	var bsdf BSDF

	if m.Emission != (core.Radiance{}) {
		bsdf.Effects = append(bsdf.Effects, NewEmission(m.Emission, Cosine()))
	}

	if m.Diffuse != (core.Albedo{}) {
		bsdf.Effects = append(bsdf.Effects, NewDiffuseReflection(m.Diffuse, Cosine()))
	}

	if m.Specular != (core.Albedo{}) {
		bsdf.Effects = append(bsdf.Effects, NewSpecularReflection(m.Specular, CosineExp(m.Shininess)))
	}

	return bsdf
}
