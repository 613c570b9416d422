package render

import (
	"math"

	"github.com/rlowe/pathtracer/pkg/core"
)

// Framebuffer accumulates per-pixel radiance sums before tone mapping.
// Accumulation is commutative across stratified samples (spec §5), so
// each pixel's Color slot can be written by exactly one worker with no
// further synchronization once tiles partition the image.
type Framebuffer struct {
	Width, Height int
	pixels        []core.Vec3
}

// NewFramebuffer allocates a zeroed width x height framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, pixels: make([]core.Vec3, width*height)}
}

// Set stores the accumulated (pre-division) radiance sum for pixel (i,j).
func (f *Framebuffer) Set(i, j int, sum core.Vec3) {
	f.pixels[j*f.Width+i] = sum
}

// At returns the accumulated radiance sum for pixel (i,j).
func (f *Framebuffer) At(i, j int) core.Vec3 {
	return f.pixels[j*f.Width+i]
}

// ToneMap divides every pixel by spp, applies gamma-2 (per-channel
// sqrt), clamps to [0, 0.999], and quantizes to 8-bit RGB (spec §4.J).
// The division uses the requested sample count, not S^2 (the stratified
// grid's actual sample count after flooring its square root).
func (f *Framebuffer) ToneMap(spp int) []byte {
	out := make([]byte, f.Width*f.Height*3)
	invSPP := 1.0 / float64(spp)

	for idx, sum := range f.pixels {
		c := sum.Multiply(invSPP).GammaCorrect(2.0)
		c = c.Clamp(0, 0.999)

		out[idx*3+0] = byte(math.Floor(256 * c.X))
		out[idx*3+1] = byte(math.Floor(256 * c.Y))
		out[idx*3+2] = byte(math.Floor(256 * c.Z))
	}
	return out
}
