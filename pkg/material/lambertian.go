package material

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/pdf"
	"github.com/rlowe/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material sampled with a cosine lobe.
type Lambertian struct {
	Texture texture.Texture
}

// NewLambertian creates a Lambertian material from a texture.
func NewLambertian(tex texture.Texture) *Lambertian {
	return &Lambertian{Texture: tex}
}

// NewLambertianColor is a convenience constructor over a solid color.
func NewLambertianColor(albedo core.Vec3) *Lambertian {
	return &Lambertian{Texture: texture.NewSolid(albedo)}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Texture.Value(hit.U, hit.V, hit.Point),
		Pdf:         pdf.NewCosine(hit.Normal),
		SkipPdf:     false,
	}, true
}

// Emitted implements Material.
func (l *Lambertian) Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF implements Material.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosTheta := hit.Normal.Dot(scattered.Direction.UnitVector())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
