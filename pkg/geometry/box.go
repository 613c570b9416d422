package geometry

import (
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// MakeBox builds a closed axis-aligned box between a and b out of exactly
// six quads, one per face (spec §4.E; resolves the §9 open issue where
// the reference implementation could double up a face).
func MakeBox(a, b core.Vec3, mat material.Material) *List {
	min := core.NewVec3(minF(a.X, b.X), minF(a.Y, b.Y), minF(a.Z, b.Z))
	max := core.NewVec3(maxF(a.X, b.X), maxF(a.Y, b.Y), maxF(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides := NewList()
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat))  // front  (+Z)
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat)) // right  (+X)
	sides.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat)) // back   (-Z)
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat))  // left   (-X)
	sides.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat)) // top    (+Y)
	sides.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat))  // bottom (-Y)
	return sides
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
