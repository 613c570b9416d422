package geometry

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// Translate wraps an object, shifting it by Offset (spec §4.D). None of
// these wrappers alter the ray's t parameterization: uniform translation,
// rotation and scaling all preserve t, so the inner hit's t is returned
// unchanged to the caller.
type Translate struct {
	noPDF
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object, displacing it by offset.
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset, bbox: object.BoundingBox().Offset(offset)}
}

// Hit implements Hittable.
func (t *Translate) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(r.Origin.Subtract(t.Offset), r.Direction, r.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox implements Hittable.
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY wraps an object, rotating it by theta degrees about the Y axis.
type RotateY struct {
	noPDF
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object, rotating it theta degrees about the Y axis.
func NewRotateY(object Hittable, thetaDegrees float64) *RotateY {
	radians := thetaDegrees * math.Pi / 180
	sinTheta, cosTheta := math.Sin(radians), math.Cos(radians)
	bbox := object.BoundingBox()

	bboxMin := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	bboxMax := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, bbox.X)
				y := lerpCorner(j, bbox.Y)
				z := lerpCorner(k, bbox.Z)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				tester := core.NewVec3(newX, y, newZ)

				bboxMin = core.NewVec3(minF(bboxMin.X, tester.X), minF(bboxMin.Y, tester.Y), minF(bboxMin.Z, tester.Z))
				bboxMax = core.NewVec3(maxF(bboxMax.X, tester.X), maxF(bboxMax.Y, tester.Y), maxF(bboxMax.Z, tester.Z))
			}
		}
	}

	return &RotateY{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABBFromPoints(bboxMin, bboxMax),
	}
}

func lerpCorner(i int, axis core.Interval) float64 {
	if i == 1 {
		return axis.Max
	}
	return axis.Min
}

// Hit implements Hittable.
func (ry *RotateY) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	origin := core.NewVec3(
		ry.cosTheta*r.Origin.X-ry.sinTheta*r.Origin.Z,
		r.Origin.Y,
		ry.sinTheta*r.Origin.X+ry.cosTheta*r.Origin.Z,
	)
	direction := core.NewVec3(
		ry.cosTheta*r.Direction.X-ry.sinTheta*r.Direction.Z,
		r.Direction.Y,
		ry.sinTheta*r.Direction.X+ry.cosTheta*r.Direction.Z,
	)
	rotatedRay := core.NewRayAtTime(origin, direction, r.Time)

	rec, ok := ry.Object.Hit(rotatedRay, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.Point = core.NewVec3(
		ry.cosTheta*rec.Point.X+ry.sinTheta*rec.Point.Z,
		rec.Point.Y,
		-ry.sinTheta*rec.Point.X+ry.cosTheta*rec.Point.Z,
	)
	rec.Normal = core.NewVec3(
		ry.cosTheta*rec.Normal.X+ry.sinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-ry.sinTheta*rec.Normal.X+ry.cosTheta*rec.Normal.Z,
	)
	return rec, true
}

// BoundingBox implements Hittable.
func (ry *RotateY) BoundingBox() core.AABB {
	return ry.bbox
}

// RotateX wraps an object, rotating it by theta degrees about the X axis.
type RotateX struct {
	noPDF
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateX wraps object, rotating it theta degrees about the X axis.
func NewRotateX(object Hittable, thetaDegrees float64) *RotateX {
	radians := thetaDegrees * math.Pi / 180
	sinTheta, cosTheta := math.Sin(radians), math.Cos(radians)
	bbox := object.BoundingBox()

	bboxMin := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	bboxMax := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpCorner(i, bbox.X)
				y := lerpCorner(j, bbox.Y)
				z := lerpCorner(k, bbox.Z)

				newY := cosTheta*y - sinTheta*z
				newZ := sinTheta*y + cosTheta*z
				tester := core.NewVec3(x, newY, newZ)

				bboxMin = core.NewVec3(minF(bboxMin.X, tester.X), minF(bboxMin.Y, tester.Y), minF(bboxMin.Z, tester.Z))
				bboxMax = core.NewVec3(maxF(bboxMax.X, tester.X), maxF(bboxMax.Y, tester.Y), maxF(bboxMax.Z, tester.Z))
			}
		}
	}

	return &RotateX{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABBFromPoints(bboxMin, bboxMax),
	}
}

// Hit implements Hittable.
func (rx *RotateX) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	origin := core.NewVec3(
		r.Origin.X,
		rx.cosTheta*r.Origin.Y+rx.sinTheta*r.Origin.Z,
		-rx.sinTheta*r.Origin.Y+rx.cosTheta*r.Origin.Z,
	)
	direction := core.NewVec3(
		r.Direction.X,
		rx.cosTheta*r.Direction.Y+rx.sinTheta*r.Direction.Z,
		-rx.sinTheta*r.Direction.Y+rx.cosTheta*r.Direction.Z,
	)
	rotatedRay := core.NewRayAtTime(origin, direction, r.Time)

	rec, ok := rx.Object.Hit(rotatedRay, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.Point = core.NewVec3(
		rec.Point.X,
		rx.cosTheta*rec.Point.Y-rx.sinTheta*rec.Point.Z,
		rx.sinTheta*rec.Point.Y+rx.cosTheta*rec.Point.Z,
	)
	rec.Normal = core.NewVec3(
		rec.Normal.X,
		rx.cosTheta*rec.Normal.Y-rx.sinTheta*rec.Normal.Z,
		rx.sinTheta*rec.Normal.Y+rx.cosTheta*rec.Normal.Z,
	)
	return rec, true
}

// BoundingBox implements Hittable.
func (rx *RotateX) BoundingBox() core.AABB {
	return rx.bbox
}

// Scale wraps an object, scaling it component-wise by Factors. Its
// bounding box is computed from the 8 scaled corners of the inner box,
// not the two extremal points, matching RotateX/RotateY (spec §9 open
// issue - the two-point version is a bug for non-uniform scale).
type Scale struct {
	Object  Hittable
	Factors core.Vec3
	bbox    core.AABB
}

// NewScale wraps object, scaling it component-wise by factors.
func NewScale(object Hittable, factors core.Vec3) *Scale {
	bbox := object.BoundingBox()
	bboxMin := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	bboxMax := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(lerpCorner(i, bbox.X), lerpCorner(j, bbox.Y), lerpCorner(k, bbox.Z))
				scaled := corner.MultiplyVec(factors)
				bboxMin = core.NewVec3(minF(bboxMin.X, scaled.X), minF(bboxMin.Y, scaled.Y), minF(bboxMin.Z, scaled.Z))
				bboxMax = core.NewVec3(maxF(bboxMax.X, scaled.X), maxF(bboxMax.Y, scaled.Y), maxF(bboxMax.Z, scaled.Z))
			}
		}
	}

	return &Scale{Object: object, Factors: factors, bbox: core.NewAABBFromPoints(bboxMin, bboxMax)}
}

// Hit implements Hittable.
func (sc *Scale) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	inv := core.NewVec3(1/sc.Factors.X, 1/sc.Factors.Y, 1/sc.Factors.Z)
	localRay := core.NewRayAtTime(r.Origin.MultiplyVec(inv), r.Direction.MultiplyVec(inv), r.Time)

	rec, ok := sc.Object.Hit(localRay, rayT, sampler)
	if !ok {
		return material.HitRecord{}, false
	}

	rec.Point = rec.Point.MultiplyVec(sc.Factors)
	outwardNormal := rec.Normal.MultiplyVec(inv).UnitVector()
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// BoundingBox implements Hittable.
func (sc *Scale) BoundingBox() core.AABB {
	return sc.bbox
}

// PDFValue implements Hittable by forwarding in local space is not
// supported; scaled objects default to unsampleable, matching the other
// transform wrappers' noPDF default.
func (sc *Scale) PDFValue(origin, direction core.Vec3) float64 { return 0 }

// Random implements Hittable's default for unsampleable objects.
func (sc *Scale) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
