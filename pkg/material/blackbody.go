package material

import "github.com/ennocramer/lucifer/pkg/core"

// Blackbody is a pure emitter of light
type Blackbody struct {
	Radiance core.Radiance
}

// NewBlackbody creates a new blackbody material
func NewBlackbody(radiance core.Radiance) Blackbody {
	return Blackbody{Radiance: radiance}
}

// Shade implements the Material interface
func (b Blackbody) Shade(_ core.Intersection) BSDF {
	return BSDF{Effects: []Effect{NewEmission(b.Radiance, Cosine())}}
}
