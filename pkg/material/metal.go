package material

import "github.com/rlowe/pathtracer/pkg/core"

// Metal is a specular reflector with optional fuzz.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = maximally fuzzy
}

// NewMetal creates a Metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.UnitVector(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(sampler.RandomInUnitSphere().Multiply(m.Fuzz))
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		SkipPdf:     true,
		SkipPdfRay:  core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
	}, true
}

// Emitted implements Material.
func (m *Metal) Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF implements Material.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}
