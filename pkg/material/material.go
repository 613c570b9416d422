// Package material implements the BxDF layer (spec §4.H): every Material
// exposes a scatter sample, an emission term, and an evaluation PDF of its
// own scattering model.
package material

import (
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/pdf"
)

// HitRecord carries everything the integrator needs about a ray/surface
// intersection (spec §3).
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal stores outwardNormal (assumed unit length) oriented to
// always oppose the incoming ray, and records which side was hit.
func (h *HitRecord) SetFaceNormal(r core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterRecord is what Material.Scatter returns: either a full sampling
// record (Pdf non-nil) for MIS-combined sampling, or a skip-pdf record
// carrying an explicit deterministic next ray for specular/dielectric
// materials (spec §3).
type ScatterRecord struct {
	Attenuation core.Vec3
	Pdf         pdf.Pdf
	SkipPdf     bool
	SkipPdfRay  core.Ray
}

// Material is the capability set every scattering surface implements.
type Material interface {
	// Scatter samples an outgoing direction given the incoming ray and
	// hit record. It returns false when the material does not scatter
	// (pure emitters).
	Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool)

	// Emitted returns the emission at the hit point; black by default.
	Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3

	// ScatteringPDF evaluates the PDF of the outgoing direction under the
	// material's own scattering model (used to weight the BRDF sample
	// against the light sample under MIS); 0 by default.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}
