package geometry

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
	"github.com/rlowe/pathtracer/pkg/texture"
)

// ConstantMedium is a homogeneous participating medium of constant
// density, entered and exited through an arbitrary convex boundary
// (spec §4.I). Scattering is sampled as a free-flight distance inside
// the boundary; the hit normal and front-face flag are arbitrary since
// they carry no meaning for isotropic scattering.
type ConstantMedium struct {
	noPDF
	Boundary      Hittable
	negInvDensity float64
	phaseFunction material.Material
}

// NewConstantMedium wraps boundary in a medium of the given density,
// scattering light via tex.
func NewConstantMedium(boundary Hittable, density float64, tex texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		phaseFunction: material.NewIsotropic(tex),
	}
}

// NewConstantMediumColor wraps boundary in a medium of the given density
// and uniform color.
func NewConstantMediumColor(boundary Hittable, density float64, color core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, texture.NewSolid(color))
}

// Hit implements Hittable. sampler supplies the free-flight random draw,
// since the medium's scatter distance is itself a Monte Carlo sample.
func (cm *ConstantMedium) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	rec1, hit1 := cm.Boundary.Hit(r, core.Universe, sampler)
	if !hit1 {
		return material.HitRecord{}, false
	}

	rec2, hit2 := cm.Boundary.Hit(r, core.NewInterval(rec1.T+0.0001, math.Inf(1)), sampler)
	if !hit2 {
		return material.HitRecord{}, false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return material.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := cm.negInvDensity * math.Log(sampler.Float64())

	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	rec := material.HitRecord{
		T:         t,
		Point:     r.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  cm.phaseFunction,
	}
	return rec, true
}

// BoundingBox implements Hittable.
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}
