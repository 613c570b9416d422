package texture

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin implements gradient (Perlin) noise: a fixed table of 256 random
// unit vectors and three 256-entry permutations, trilinearly interpolated
// after a smoothstep on the fractional coordinates (spec §3/§4.G).
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a Perlin noise table seeded from sampler s.
func NewPerlin(s *core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = s.Vec3Range(-1, 1).UnitVector()
	}
	generatePerm(s, &p.permX)
	generatePerm(s, &p.permY)
	generatePerm(s, &p.permZ)
	return p
}

func generatePerm(s *core.Sampler, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := s.Int(0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise samples the noise field at point p, in [-1,1].
func (p *Perlin) Noise(pt core.Vec3) float64 {
	u := pt.X - math.Floor(pt.X)
	v := pt.Y - math.Floor(pt.Y)
	w := pt.Z - math.Floor(pt.Z)

	i := int(math.Floor(pt.X))
	j := int(math.Floor(pt.Y))
	k := int(math.Floor(pt.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turb sums depth octaves of noise at doubling frequency and halving
// weight, taking the absolute value (turbulence, spec §3/§4.G).
func (p *Perlin) Turb(pt core.Vec3, depth int) float64 {
	accum := 0.0
	temp := pt
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(accum)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// Noise is a marble-like procedural texture built from turbulence applied
// to the Z coordinate, modulated by a sine wave (spec §4.G).
type Noise struct {
	perlin *Perlin
	scale  float64
}

// NewNoise creates a noise texture with the given spatial scale.
func NewNoise(s *core.Sampler, scale float64) *Noise {
	return &Noise{perlin: NewPerlin(s), scale: scale}
}

// Value implements Texture.
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	scaled := p.Multiply(n.scale)
	grey := 0.5 * (1 + math.Sin(scaled.Z+10*n.perlin.Turb(scaled, 7)))
	return core.NewVec3(1, 1, 1).Multiply(grey)
}
