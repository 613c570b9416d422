package geometry

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// Quad is a parallelogram defined by a corner and two edge vectors
// (spec §4.E).
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Material material.Material

	normal core.Vec3
	w      core.Vec3
	d      float64
	area   float64
}

// NewQuad creates a quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.UnitVector()
	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		w:        n.Divide(n.Dot(n)),
		d:        normal.Dot(corner),
		area:     n.Length(),
	}
}

// Hit implements Hittable.
func (q *Quad) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	denom := r.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := (q.d - r.Origin.Dot(q.normal)) / denom
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	p := r.At(t)
	hitVector := p.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{T: t, Point: p, Material: q.Material, U: alpha, V: beta}
	rec.SetFaceNormal(r, q.normal)
	return rec, true
}

// BoundingBox implements Hittable.
func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	return core.NewAABBFromPoints(corners...)
}

// PDFValue implements Hittable: the solid-angle PDF of sampling this quad
// as an area light from origin toward direction (spec §4.E).
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	rec, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// Random implements Hittable: samples a uniformly random point on the
// quad and returns the direction from origin to it.
func (q *Quad) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	p := q.Corner.Add(q.U.Multiply(s.Float64())).Add(q.V.Multiply(s.Float64()))
	return p.Subtract(origin)
}
