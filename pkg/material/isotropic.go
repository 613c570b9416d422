package material

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/pdf"
	"github.com/rlowe/pathtracer/pkg/texture"
)

// Isotropic is the phase function for a homogeneous participating medium:
// it scatters uniformly in every direction (spec §4.H/§4.I).
type Isotropic struct {
	Texture texture.Texture
}

// NewIsotropic creates an Isotropic material from a texture.
func NewIsotropic(tex texture.Texture) *Isotropic {
	return &Isotropic{Texture: tex}
}

// NewIsotropicColor is a convenience constructor over a solid color.
func NewIsotropicColor(albedo core.Vec3) *Isotropic {
	return &Isotropic{Texture: texture.NewSolid(albedo)}
}

// Scatter implements Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Texture.Value(hit.U, hit.V, hit.Point),
		Pdf:         pdf.Sphere{},
	}, true
}

// Emitted implements Material.
func (i *Isotropic) Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF implements Material.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
