package material

import (
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/texture"
)

// DiffuseLight is a one-sided emitter: it emits its texture's color from
// the front face only, and never scatters.
type DiffuseLight struct {
	Texture texture.Texture
}

// NewDiffuseLight creates a DiffuseLight from a texture.
func NewDiffuseLight(tex texture.Texture) *DiffuseLight {
	return &DiffuseLight{Texture: tex}
}

// NewDiffuseLightColor is a convenience constructor over a solid color.
func NewDiffuseLightColor(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Texture: texture.NewSolid(emission)}
}

// Scatter implements Material; diffuse lights never scatter.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted implements Material: emission only from the front face.
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Texture.Value(u, v, p)
}

// ScatteringPDF implements Material.
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}
