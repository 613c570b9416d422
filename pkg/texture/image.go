package texture

import "github.com/rlowe/pathtracer/pkg/core"

// cyanFallback is returned when the backing image failed to load,
// so a broken texture reference is visible rather than silently black
// (spec §4.G/§7).
var cyanFallback = core.NewVec3(0, 1, 1)

// Image is a texture backed by decoded image pixels, addressed with
// nearest-neighbor lookup. Width/Height are 0 when the source image
// failed to load.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, top-to-bottom
}

// NewImage wraps already-decoded pixel data.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Value implements Texture.
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Height <= 0 {
		return cyanFallback
	}

	u = core.NewInterval(0, 1).Clamp(u)
	v = 1.0 - core.NewInterval(0, 1).Clamp(v) // flip to image coordinates

	i := int(u * float64(t.Width))
	j := int(v * float64(t.Height))
	if i >= t.Width {
		i = t.Width - 1
	}
	if j >= t.Height {
		j = t.Height - 1
	}

	return t.Pixels[j*t.Width+i]
}
