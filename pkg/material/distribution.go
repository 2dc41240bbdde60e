package material

import (
	"math"

	"github.com/ennocramer/lucifer/pkg/core"
)

type distributionKind int

const (
	distDirac distributionKind = iota
	distUniform
	distCosine
	distCosineExp
)

// Distribution describes how light is emitted, reflected, or refracted
// over the hemisphere around an axis, such as the surface normal. It is
// assumed to be isotropic around the axis and is evaluated from the cosine
// of the angle to the axis.
type Distribution struct {
	kind     distributionKind
	exponent float64
}

// Dirac concentrates all light exactly along the axis, without any
// scattering. This is the distribution of a perfect mirror.
func Dirac() Distribution {
	return Distribution{kind: distDirac}
}

// Uniform spreads light uniformly over the hemisphere around the axis.
func Uniform() Distribution {
	return Distribution{kind: distUniform}
}

// Cosine spreads light over a cosine-weighted hemisphere around the axis.
// This is the distribution of a perfectly rough surface, appearing equally
// bright from all angles.
func Cosine() Distribution {
	return Distribution{kind: distCosine}
}

// CosineExp spreads light with an exponential drop-off based on the cosine
// of the angle to the axis. Higher exponents scatter less: an exponent of 0
// equals Uniform, 1 equals Cosine, and infinity equals Dirac.
func CosineExp(exponent float64) Distribution {
	return Distribution{kind: distCosineExp, exponent: exponent}
}

// Eval returns the distribution's density for the given cosine of the
// angle to the axis. It panics when the cosine is outside [-1, 1].
func (d Distribution) Eval(cosTheta float64) float64 {
	if !(cosTheta >= -1 && cosTheta <= 1) {
		panic("material: cosine outside [-1, 1]")
	}

	if cosTheta < 0 {
		return 0
	}

	switch d.kind {
	case distDirac:
		if cosTheta >= 1 {
			return 1
		}
		return 0
	case distUniform:
		return 1 / cosTheta
	case distCosine:
		return 1
	default:
		return math.Pow(cosTheta, d.exponent-1)
	}
}

// Sample draws a unit vector from the hemisphere around +z according to
// the distribution. It returns the vector and the value of the probability
// density function for that draw.
func (d Distribution) Sample(sampler core.Sampler) (core.Vec3, float64) {
	if d.kind == distDirac {
		return core.NewVec3(0, 0, 1), 0.5 / math.Pi
	}

	phi := sampler.Float64() * 2 * math.Pi
	y := sampler.Float64()

	var cosTheta, pdf float64
	switch d.kind {
	case distUniform:
		cosTheta = 1 - y
		pdf = 0.5 / math.Pi
	case distCosine:
		cosTheta = math.Sqrt(1 - y)
		pdf = cosTheta / math.Pi
	default:
		cosTheta = math.Pow(1-y, 1/(d.exponent+1))
		pdf = (d.exponent + 1) * math.Pow(cosTheta, d.exponent) / math.Pi
	}

	r := math.Sqrt(1 - cosTheta*cosTheta)
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), cosTheta), pdf
}

// Tangent returns an arbitrary unit vector perpendicular to normal.
func Tangent(normal core.Vec3) core.Vec3 {
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		return core.NewVec3(normal.Z, 0, -normal.X).Normalize()
	}
	return core.NewVec3(0, normal.Z, -normal.Y).Normalize()
}

// AlignToAxis re-expresses v, a hemisphere sample drawn around +z, in the
// orthonormal basis whose z-axis is axis.
func AlignToAxis(axis, v core.Vec3) core.Vec3 {
	tangent := Tangent(axis)
	bitangent := axis.Cross(tangent)

	return tangent.Multiply(v.X).
		Add(bitangent.Multiply(v.Y)).
		Add(axis.Multiply(v.Z))
}
