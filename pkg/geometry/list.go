package geometry

import (
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// List is an aggregate of Hittables with a uniform selection strategy for
// both intersection and light sampling (spec §4.F).
type List struct {
	Objects []Hittable
	bbox    core.AABB
	hasBox  bool
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// NewListOf creates a list from existing objects.
func NewListOf(objects ...Hittable) *List {
	l := NewList()
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends an object and extends the accumulated bounding box.
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	if l.hasBox {
		l.bbox = l.bbox.Union(object.BoundingBox())
	} else {
		l.bbox = object.BoundingBox()
		l.hasBox = true
	}
}

// Hit returns the closest intersection among all children within rayT.
func (l *List) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// BoundingBox implements Hittable.
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue implements Hittable: the uniform mixture of each child's PDF.
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, obj := range l.Objects {
		sum += weight * obj.PDFValue(origin, direction)
	}
	return sum
}

// Random implements Hittable: picks one child uniformly and forwards.
func (l *List) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.Objects[s.Int(0, len(l.Objects)-1)].Random(s, origin)
}
