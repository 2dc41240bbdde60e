package material

import "github.com/ennocramer/lucifer/pkg/core"

// Ior is an index of refraction
type Ior float64

// EffectKind identifies the kind of surface interaction an Effect
// describes
type EffectKind int

const (
	// Emission is light emission independent of incoming light
	Emission EffectKind = iota
	// DiffuseReflection is reflection centered on the surface normal
	DiffuseReflection
	// SpecularReflection is reflection centered on the mirrored incidence
	// vector
	SpecularReflection
	// DiffuseRefraction is refraction centered on the inverse surface
	// normal
	DiffuseRefraction
	// SpecularRefraction is refraction centered on the refracted incidence
	// vector
	SpecularRefraction
)

// Effect is one component of the appearance of a surface. Radiance is set
// for emission effects, Albedo for reflection and refraction effects, and
// Ior for refraction effects.
type Effect struct {
	Kind         EffectKind
	Radiance     core.Radiance
	Albedo       core.Albedo
	Ior          Ior
	Distribution Distribution
}

// NewEmission creates an emission effect
func NewEmission(radiance core.Radiance, distribution Distribution) Effect {
	return Effect{Kind: Emission, Radiance: radiance, Distribution: distribution}
}

// NewDiffuseReflection creates a diffuse reflection effect
func NewDiffuseReflection(albedo core.Albedo, distribution Distribution) Effect {
	return Effect{Kind: DiffuseReflection, Albedo: albedo, Distribution: distribution}
}

// NewSpecularReflection creates a specular reflection effect
func NewSpecularReflection(albedo core.Albedo, distribution Distribution) Effect {
	return Effect{Kind: SpecularReflection, Albedo: albedo, Distribution: distribution}
}

// NewDiffuseRefraction creates a diffuse refraction effect
func NewDiffuseRefraction(albedo core.Albedo, ior Ior, distribution Distribution) Effect {
	return Effect{Kind: DiffuseRefraction, Albedo: albedo, Ior: ior, Distribution: distribution}
}

// NewSpecularRefraction creates a specular refraction effect
func NewSpecularRefraction(albedo core.Albedo, ior Ior, distribution Distribution) Effect {
	return Effect{Kind: SpecularRefraction, Albedo: albedo, Ior: ior, Distribution: distribution}
}

// BSDF describes the appearance of a point on a surface as a set of
// effects
type BSDF struct {
	Effects []Effect
}

// Material computes the appearance of a point on a surface
type Material interface {
	Shade(intersection core.Intersection) BSDF
}
