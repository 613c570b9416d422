package material

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that reflects and
// refracts according to Snell's law with Schlick-approximated Fresnel
// reflectance.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements Material.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool) {
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.UnitVector()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if eta*sinTheta > 1.0 || Reflectance(cosTheta, eta) > sampler.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, eta)
	}

	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SkipPdf:     true,
		SkipPdfRay:  core.NewRayAtTime(hit.Point, direction, rayIn.Time),
	}, true
}

// Emitted implements Material.
func (d *Dielectric) Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF implements Material.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Reflectance computes the Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
