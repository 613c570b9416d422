// Package pdf implements the sampling distributions composable under
// multiple importance sampling (spec §3/§4.J): every Pdf exposes a
// sampling routine (Generate) and its matching density (Value).
package pdf

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

// Pdf samples directions on the unit sphere/hemisphere and evaluates the
// density of a given direction.
type Pdf interface {
	Value(direction core.Vec3) float64
	Generate(s *core.Sampler) core.Vec3
}

// Sphere is the uniform distribution over the full unit sphere.
type Sphere struct{}

// Value implements Pdf.
func (Sphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate implements Pdf.
func (Sphere) Generate(s *core.Sampler) core.Vec3 {
	return s.RandomUnitVector()
}

// Cosine is the cosine-weighted hemisphere distribution about a normal.
type Cosine struct {
	uvw core.ONB
}

// NewCosine builds a cosine-weighted PDF about the given unit normal.
func NewCosine(w core.Vec3) *Cosine {
	return &Cosine{uvw: core.NewONB(w)}
}

// Value implements Pdf.
func (c *Cosine) Value(direction core.Vec3) float64 {
	cosineTheta := direction.UnitVector().Dot(c.uvw.W)
	return math.Max(0, cosineTheta/math.Pi)
}

// Generate implements Pdf.
func (c *Cosine) Generate(s *core.Sampler) core.Vec3 {
	return c.uvw.Local(s.RandomCosineDirection())
}

// Hittable is the minimal capability a scene object must expose to be
// importance-sampled as a light. Declared locally (rather than imported
// from pkg/geometry) so pkg/pdf has no dependency on pkg/geometry -
// anything satisfying this shape, such as a *geometry.List of lights,
// works automatically.
type Hittable interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(s *core.Sampler, origin core.Vec3) core.Vec3
}

// HittableProxy samples directions toward a scene object (typically a
// light or list of lights) from a fixed origin.
type HittableProxy struct {
	Object Hittable
	Origin core.Vec3
}

// NewHittable builds a Pdf that samples toward object from origin.
func NewHittable(object Hittable, origin core.Vec3) *HittableProxy {
	return &HittableProxy{Object: object, Origin: origin}
}

// Value implements Pdf.
func (h *HittableProxy) Value(direction core.Vec3) float64 {
	return h.Object.PDFValue(h.Origin, direction)
}

// Generate implements Pdf.
func (h *HittableProxy) Generate(s *core.Sampler) core.Vec3 {
	return h.Object.Random(s, h.Origin)
}

// Mixture combines two child Pdfs with an even 50/50 weighting, which is
// what keeps combined sampling strictly positive whenever either child
// is (spec §7): the BRDF Pdf is always one of the two children.
type Mixture struct {
	P [2]Pdf
}

// NewMixture builds a 50/50 mixture of p0 and p1.
func NewMixture(p0, p1 Pdf) *Mixture {
	return &Mixture{P: [2]Pdf{p0, p1}}
}

// Value implements Pdf.
func (m *Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.P[0].Value(direction) + 0.5*m.P[1].Value(direction)
}

// Generate implements Pdf.
func (m *Mixture) Generate(s *core.Sampler) core.Vec3 {
	if s.Float64() < 0.5 {
		return m.P[0].Generate(s)
	}
	return m.P[1].Generate(s)
}
