// Package integrator implements the recursive Monte Carlo estimator
// that combines a material's own scattering PDF with a lights-only PDF
// under multiple importance sampling (spec §4.J).
package integrator

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
	"github.com/rlowe/pathtracer/pkg/pdf"
)

// World is the subset of geometry.Hittable the integrator traces
// against; satisfied by geometry.BVH, geometry.List, or any primitive
// used standalone.
type World interface {
	Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool)
}

// Lights is the subset of geometry.Hittable used for direct-light
// importance sampling via pdf.HittableProxy.
type Lights = pdf.Hittable

// minHitT is the intersection epsilon that keeps a scattered ray from
// immediately re-hitting its own origin surface.
const minHitT = 0.001

// Trace evaluates the recursive estimator L(r, depth) against world,
// using lights for MIS direct-light sampling and background as the
// miss radiance (spec §4.J).
func Trace(sampler *core.Sampler, world World, lights Lights, background core.Vec3, r core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(r, core.NewInterval(minHitT, math.Inf(1)), sampler)
	if !ok {
		return background
	}

	mat := hit.Material
	emitted := mat.Emitted(r, hit, hit.U, hit.V, hit.Point)

	srec, scattered := mat.Scatter(r, hit, sampler)
	if !scattered {
		return emitted
	}

	if srec.SkipPdf {
		return emitted.Add(srec.Attenuation.MultiplyVec(Trace(sampler, world, lights, background, srec.SkipPdfRay, depth-1)))
	}

	lightPdf := pdf.NewHittable(lights, hit.Point)
	mixedPdf := pdf.NewMixture(lightPdf, srec.Pdf)

	direction := mixedPdf.Generate(sampler)
	scatteredRay := core.NewRayAtTime(hit.Point, direction, r.Time)
	pdfVal := mixedPdf.Value(direction)
	if pdfVal <= 0 {
		return emitted
	}

	scatteringPdf := mat.ScatteringPDF(r, hit, scatteredRay)

	colorFromScatter := srec.Attenuation.
		Multiply(scatteringPdf).
		MultiplyVec(Trace(sampler, world, lights, background, scatteredRay, depth-1)).
		Divide(pdfVal)

	return emitted.Add(colorFromScatter)
}
