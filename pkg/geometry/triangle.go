package geometry

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// Triangle is a mesh primitive with per-vertex normals and UVs,
// intersected with Moller-Trumbore (spec §4.E).
type Triangle struct {
	noPDF

	P0, P1, P2    core.Vec3
	N0, N1, N2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	Material      material.Material
}

// NewTriangle creates a triangle from three vertex positions, defaulting
// all three vertex normals to the unit face normal (p1-p0)x(p2-p0) and
// UVs to (0,0).
func NewTriangle(p0, p1, p2 core.Vec3, mat material.Material) *Triangle {
	defaultNormal := p1.Subtract(p0).Cross(p2.Subtract(p0)).UnitVector()
	return &Triangle{
		P0: p0, P1: p1, P2: p2,
		N0: defaultNormal, N1: defaultNormal, N2: defaultNormal,
		Material: mat,
	}
}

// WithNormals overrides the per-vertex shading normals.
func (t *Triangle) WithNormals(n0, n1, n2 core.Vec3) *Triangle {
	t.N0, t.N1, t.N2 = n0, n1, n2
	return t
}

// WithUVs overrides the per-vertex texture coordinates.
func (t *Triangle) WithUVs(uv0, uv1, uv2 core.Vec2) *Triangle {
	t.UV0, t.UV1, t.UV2 = uv0, uv1, uv2
	return t
}

// Hit implements Hittable.
func (t *Triangle) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	edge1 := t.P1.Subtract(t.P0)
	edge2 := t.P2.Subtract(t.P0)
	pvec := r.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	if math.Abs(det) < 1e-8 {
		return material.HitRecord{}, false
	}
	invDet := 1.0 / det

	tvec := r.Origin.Subtract(t.P0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return material.HitRecord{}, false
	}

	qvec := tvec.Cross(edge1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return material.HitRecord{}, false
	}

	tHit := edge2.Dot(qvec) * invDet
	if !rayT.Surrounds(tHit) {
		return material.HitRecord{}, false
	}

	w := 1 - u - v
	normal := t.N0.Multiply(w).Add(t.N1.Multiply(u)).Add(t.N2.Multiply(v))
	uv := core.Vec2{
		X: t.UV0.X*w + t.UV1.X*u + t.UV2.X*v,
		Y: t.UV0.Y*w + t.UV1.Y*u + t.UV2.Y*v,
	}

	rec := material.HitRecord{T: tHit, Point: r.At(tHit), Material: t.Material, U: uv.X, V: uv.Y}
	rec.SetFaceNormal(r, normal.UnitVector())
	return rec, true
}

// BoundingBox implements Hittable.
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.P0, t.P1, t.P2)
}
