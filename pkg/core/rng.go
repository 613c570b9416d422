package core

import (
	"math"
	"math/rand"
)

// Sampler draws uniform [0,1) floats for a single rendering worker. Each
// goroutine owns its own Sampler so the process-wide RNG contract (spec
// §5/§9) is satisfied without locking; ordering of draws across workers
// is not observable in the output up to Monte-Carlo noise.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler creates a Sampler seeded deterministically from seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform random float in [0,1).
func (s *Sampler) Float64() float64 {
	return s.rnd.Float64()
}

// Range returns a uniform random float in [a,b).
func (s *Sampler) Range(a, b float64) float64 {
	return a + (b-a)*s.Float64()
}

// Int returns a uniform random integer in [a,b] inclusive.
func (s *Sampler) Int(a, b int) int {
	return int(math.Floor(s.Range(float64(a), float64(b+1))))
}

// Vec3 returns a vector with each component drawn uniformly from [0,1).
func (s *Sampler) Vec3() Vec3 {
	return Vec3{X: s.Float64(), Y: s.Float64(), Z: s.Float64()}
}

// Vec3Range returns a vector with each component drawn uniformly from [a,b).
func (s *Sampler) Vec3Range(a, b float64) Vec3 {
	return Vec3{X: s.Range(a, b), Y: s.Range(a, b), Z: s.Range(a, b)}
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit ball.
func (s *Sampler) RandomInUnitSphere() Vec3 {
	for {
		p := s.Vec3Range(-1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere.
func (s *Sampler) RandomUnitVector() Vec3 {
	return s.RandomInUnitSphere().UnitVector()
}

// RandomInUnitDisk rejection-samples a point inside the unit disk in the XY plane.
func (s *Sampler) RandomInUnitDisk() Vec3 {
	for {
		p := Vec3{X: s.Range(-1, 1), Y: s.Range(-1, 1), Z: 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted random direction about +Z.
func (s *Sampler) RandomCosineDirection() Vec3 {
	r1 := s.Float64()
	r2 := s.Float64()
	phi := 2 * math.Pi * r1
	sq := math.Sqrt(r2)
	return Vec3{
		X: math.Cos(phi) * sq,
		Y: math.Sin(phi) * sq,
		Z: math.Sqrt(1 - r2),
	}
}
