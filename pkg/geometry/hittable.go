// Package geometry implements the acceleration structure, the
// ray/primitive intersection layer, and the affine/medium decorators
// (spec §2 rows C-F, K).
package geometry

import (
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// Hittable is the capability set every geometric object exposes (spec §3):
// ray intersection, a bounding volume, and the pair of methods that let
// the object double as an importance-sampled light.
type Hittable interface {
	// Hit tests r against the object within rayT. sampler supplies the
	// random draws some decorators need during traversal itself (the
	// medium's free-flight distance); most primitives ignore it.
	Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool)
	BoundingBox() core.AABB

	// PDFValue returns the PDF of sampling direction from origin toward
	// this object. Defaults to 0 for objects that don't support it.
	PDFValue(origin, direction core.Vec3) float64

	// Random returns a direction from origin toward a sampled point on
	// this object. Defaults to (1,0,0) for objects that don't support it.
	Random(s *core.Sampler, origin core.Vec3) core.Vec3
}

// noPDF can be embedded by shapes that don't support light sampling, to
// pick up the spec-mandated defaults without repeating them everywhere.
type noPDF struct{}

func (noPDF) PDFValue(origin, direction core.Vec3) float64 { return 0 }

func (noPDF) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
