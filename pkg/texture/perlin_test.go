package texture

import (
	"math"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
)

func TestPerlinNoiseBounded(t *testing.T) {
	p := NewPerlin(core.NewSampler(9))
	for i := 0; i < 1000; i++ {
		pt := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.53)
		n := p.Noise(pt)
		if n < -1.01 || n > 1.01 {
			t.Fatalf("Noise(%v) = %v, want roughly in [-1,1]", pt, n)
		}
	}
}

func TestPerlinTurbNonNegative(t *testing.T) {
	p := NewPerlin(core.NewSampler(9))
	for i := 0; i < 1000; i++ {
		pt := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.53)
		if turb := p.Turb(pt, 7); turb < 0 {
			t.Fatalf("Turb(%v) = %v, want >= 0", pt, turb)
		}
	}
}

func TestNoiseTextureValueInUnitRange(t *testing.T) {
	n := NewNoise(core.NewSampler(3), 4.0)
	for i := 0; i < 200; i++ {
		pt := core.NewVec3(float64(i)*0.9, 1, 2)
		c := n.Value(0, 0, pt)
		if c.X < 0 || c.X > 1 || math.Abs(c.X-c.Y) > 1e-12 || math.Abs(c.Y-c.Z) > 1e-12 {
			t.Fatalf("Noise texture value = %v, want grayscale in [0,1]", c)
		}
	}
}
