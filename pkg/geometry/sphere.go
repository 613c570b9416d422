package geometry

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// Sphere is a (possibly moving) sphere primitive. Motion is expressed as
// an internal core.Ray whose origin is the center at t=0 and whose
// direction is the per-shutter center displacement (spec §4.E).
type Sphere struct {
	centerRay core.Ray
	Radius    float64
	Material  material.Material
	moving    bool
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		centerRay: core.NewRay(center, core.Vec3{}),
		Radius:    radius,
		Material:  mat,
	}
}

// NewMovingSphere creates a sphere whose center moves linearly from
// center0 (t=0) to center1 (t=1) across the shutter interval.
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		centerRay: core.NewRay(center0, center1.Subtract(center0)),
		Radius:    radius,
		Material:  mat,
		moving:    true,
	}
}

// centerAt returns the sphere's center at the given ray time.
func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.centerRay.At(time)
}

// Hit implements Hittable.
func (s *Sphere) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	center := s.centerAt(r.Time)
	oc := center.Subtract(r.Origin)

	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	p := r.At(root)
	outwardNormal := p.Subtract(center).Divide(s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := material.HitRecord{T: root, Point: p, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements Hittable. For a moving sphere the box covers
// both endpoint positions, each expanded by the radius.
func (s *Sphere) BoundingBox() core.AABB {
	rVec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	c0 := s.centerAt(0)
	box0 := core.NewAABBFromPoints(c0.Subtract(rVec), c0.Add(rVec))
	if !s.moving {
		return box0
	}
	c1 := s.centerAt(1)
	box1 := core.NewAABBFromPoints(c1.Subtract(rVec), c1.Add(rVec))
	return box0.Union(box1)
}

// PDFValue implements Hittable: the solid-angle PDF of sampling this
// sphere as seen from origin, via the cone-sampling formula (spec §4.E).
// Only meaningful for stationary spheres used as lights.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		return 0
	}

	center := s.centerAt(0)
	distSq := center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random implements Hittable: samples a direction toward the sphere
// within the visible cone, in the sphere's local ONB (spec §4.E).
func (s *Sphere) Random(smp *core.Sampler, origin core.Vec3) core.Vec3 {
	center := s.centerAt(0)
	direction := center.Subtract(origin)
	distSq := direction.LengthSquared()
	uvw := core.NewONB(direction.UnitVector())
	return uvw.Local(randomToSphere(smp, s.Radius, distSq))
}

func randomToSphere(s *core.Sampler, radius, distanceSquared float64) core.Vec3 {
	r1 := s.Float64()
	r2 := s.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return core.NewVec3(x, y, z)
}
