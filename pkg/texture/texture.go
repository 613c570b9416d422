// Package texture implements the (u,v,p) -> RGB texture layer (spec §4.G).
package texture

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

// Texture maps a surface point (u,v parametric coordinates plus the 3D
// hit point, for procedural textures) to a color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Solid is a constant-color texture.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a constant-color texture.
func NewSolid(c core.Vec3) *Solid {
	return &Solid{Color: c}
}

// Value implements Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two child textures based on the parity of
// floor(x*s) + floor(y*s) + floor(z*s): even sums pick Even, odd sums Odd.
type Checker struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a 3D checkerboard texture with the given scale
// (the spacing between checks; InvScale = 1/scale is cached internally).
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor over two solid colors.
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolid(even), NewSolid(odd))
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))
	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
