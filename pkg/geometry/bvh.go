package geometry

import (
	"sort"

	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// BVH is a bounding-volume hierarchy over Hittables, built by recursive
// median splitting along the longest axis of the covering box (spec
// §4.C). Leaves with a single object store it as both Left and Right.
type BVH struct {
	Left, Right Hittable
	bbox        core.AABB
}

// NewBVH builds a BVH covering all of objects. The input slice is copied
// before sorting so callers keep a stable view of their own object order.
func NewBVH(objects []Hittable) *BVH {
	cp := make([]Hittable, len(objects))
	copy(cp, objects)
	return buildBVH(cp)
}

func buildBVH(objects []Hittable) *BVH {
	bbox := core.AABB{X: core.Empty, Y: core.Empty, Z: core.Empty}
	for _, o := range objects {
		bbox = bbox.Union(o.BoundingBox())
	}
	axis := bbox.LongestAxis()

	n := len(objects)
	node := &BVH{bbox: bbox}

	switch n {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if boxMin(objects[0], axis) <= boxMin(objects[1], axis) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return boxMin(objects[i], axis) < boxMin(objects[j], axis)
		})
		mid := n / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	return node
}

func boxMin(h Hittable, axis int) float64 {
	return h.BoundingBox().Axis(axis).Min
}

// Hit implements Hittable. It rejects via the node's own slab test, then
// recurses left with the caller's range and right with the range
// narrowed to the left hit's t - the tightening that makes traversal
// front-to-back effective (spec §4.C).
func (b *BVH) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	if !b.bbox.Hit(r, rayT) {
		return material.HitRecord{}, false
	}

	leftRec, hitLeft := b.Left.Hit(r, rayT, sampler)

	rightRange := rayT
	if hitLeft {
		rightRange.Max = leftRec.T
	}
	rightRec, hitRight := b.Right.Hit(r, rightRange, sampler)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return material.HitRecord{}, false
}

// BoundingBox implements Hittable.
func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}

// PDFValue implements Hittable, forwarding uniformly to both children.
func (b *BVH) PDFValue(origin, direction core.Vec3) float64 {
	return 0.5*b.Left.PDFValue(origin, direction) + 0.5*b.Right.PDFValue(origin, direction)
}

// Random implements Hittable, picking one child with equal probability.
func (b *BVH) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	if s.Float64() < 0.5 {
		return b.Left.Random(s, origin)
	}
	return b.Right.Random(s, origin)
}
