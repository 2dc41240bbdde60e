package core

// Radiance represents the radiant intensity of light as an RGB triple.
// The zero value is absolute darkness.
type Radiance struct {
	R, G, B float64
}

// NewRadiance creates a Radiance with the given channel intensities
func NewRadiance(r, g, b float64) Radiance {
	return Radiance{R: r, G: g, B: b}
}

// RadianceGray creates a Radiance with equal intensity in all channels
func RadianceGray(f float64) Radiance {
	return Radiance{R: f, G: f, B: f}
}

// Add returns the channelwise sum of two radiance values
func (r Radiance) Add(other Radiance) Radiance {
	return Radiance{r.R + other.R, r.G + other.G, r.B + other.B}
}

// Scale returns the radiance scaled by a scalar
func (r Radiance) Scale(scalar float64) Radiance {
	return Radiance{r.R * scalar, r.G * scalar, r.B * scalar}
}

// Attenuate returns the radiance filtered by a surface albedo
func (r Radiance) Attenuate(a Albedo) Radiance {
	return Radiance{r.R * a.R, r.G * a.G, r.B * a.B}
}

// Luma returns the perceptual lightness using the NTSC weights
func (r Radiance) Luma() float64 {
	return 0.21*r.R + 0.72*r.G + 0.07*r.B
}

// Albedo represents the fraction of light a surface reflects per channel.
// The zero value absorbs all light.
type Albedo struct {
	R, G, B float64
}

// NewAlbedo creates an Albedo with the given channel factors
func NewAlbedo(r, g, b float64) Albedo {
	return Albedo{R: r, G: g, B: b}
}

// AlbedoGray creates an Albedo reflecting all channels equally
func AlbedoGray(f float64) Albedo {
	return Albedo{R: f, G: f, B: f}
}

// AlbedoWhite creates an Albedo reflecting all light
func AlbedoWhite() Albedo {
	return AlbedoGray(1)
}

// AlbedoBlack creates an Albedo absorbing all light
func AlbedoBlack() Albedo {
	return Albedo{}
}

// Mul returns the channelwise product of two albedos
func (a Albedo) Mul(other Albedo) Albedo {
	return Albedo{a.R * other.R, a.G * other.G, a.B * other.B}
}

// Scale returns the albedo scaled by a scalar
func (a Albedo) Scale(scalar float64) Albedo {
	return Albedo{a.R * scalar, a.G * scalar, a.B * scalar}
}

// LumaFactor returns the perceptual influence on lightness using the
// NTSC weights
func (a Albedo) LumaFactor() float64 {
	return 0.21*a.R + 0.72*a.G + 0.07*a.B
}
