package texture

import (
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
)

func TestCheckerParity(t *testing.T) {
	even := core.NewVec3(0, 0, 0)
	odd := core.NewVec3(1, 1, 1)
	c := NewCheckerColors(1.0, even, odd)

	if got := c.Value(0, 0, core.NewVec3(0.2, 0.2, 0.2)); got != even {
		t.Errorf("Value at (0.2,0.2,0.2) = %v, want even = %v", got, even)
	}
	if got := c.Value(0, 0, core.NewVec3(1.2, 0.2, 0.2)); got != odd {
		t.Errorf("Value at (1.2,0.2,0.2) = %v, want odd = %v", got, odd)
	}
}

func TestImageFallsBackToCyanWhenEmpty(t *testing.T) {
	img := NewImage(0, 0, nil)
	got := img.Value(0.5, 0.5, core.Vec3{})
	if got != core.NewVec3(0, 1, 1) {
		t.Errorf("empty image texture = %v, want cyan fallback", got)
	}
}

func TestSolidIgnoresUVAndPoint(t *testing.T) {
	color := core.NewVec3(0.3, 0.6, 0.9)
	s := NewSolid(color)
	if got := s.Value(0.1, 0.9, core.NewVec3(100, 100, 100)); got != color {
		t.Errorf("Solid.Value = %v, want %v", got, color)
	}
}
