package camera

import "math"

type tonemapKind int

const (
	tonemapLinear tonemapKind = iota
	tonemapGamma
	tonemapReinhard
	tonemapFilmic
)

// Tonemap compresses radiance intensities into the displayable [0, 1]
// range
type Tonemap struct {
	kind  tonemapKind
	gamma float64
}

// Linear passes intensities through unchanged
func Linear() Tonemap {
	return Tonemap{kind: tonemapLinear}
}

// Gamma applies a gamma curve with the given exponent
func Gamma(gamma float64) Tonemap {
	return Tonemap{kind: tonemapGamma, gamma: gamma}
}

// Reinhard applies Reinhard compression followed by a gamma curve
func Reinhard(gamma float64) Tonemap {
	return Tonemap{kind: tonemapReinhard, gamma: gamma}
}

// Filmic applies the Hejl-Burgess-Dawson filmic curve, which includes a
// gamma of 2.2
func Filmic() Tonemap {
	return Tonemap{kind: tonemapFilmic}
}

// Apply maps a single intensity
func (t Tonemap) Apply(c float64) float64 {
	switch t.kind {
	case tonemapLinear:
		return c
	case tonemapGamma:
		return math.Pow(c, 1/t.gamma)
	case tonemapReinhard:
		return math.Pow(c/(1+c), 1/t.gamma)
	default:
		x := math.Max(c-0.004, 0)
		return (x * (6.2*x + 0.5)) / (x*(6.2*x+1.7) + 0.06)
	}
}
