// Package scene assembles Hittables and Materials into the two roots
// the integrator needs — world (everything) and lights (the subset
// importance-sampled for direct lighting) — plus a ready camera (spec
// §6). It is a collaborator, not part of the specified core.
package scene

import (
	"github.com/rlowe/pathtracer/pkg/camera"
	"github.com/rlowe/pathtracer/pkg/geometry"
)

// Scene bundles a built world/lights pair with the camera used to view
// them, the unit a CLI driver hands straight to render.Render.
type Scene struct {
	Camera *camera.Camera
	World  *geometry.BVH
	Lights *geometry.List
}

// Build wraps objects in a BVH as World and keeps lights as a flat List
// (lights are typically few, so the uniform-selection List's O(n) Random
// is cheap, and its PDFValue sum stays exact -- wrapping lights in a BVH
// too would only pay a cost no one needs here).
func Build(cam *camera.Camera, objects []geometry.Hittable, lights []geometry.Hittable) *Scene {
	return &Scene{
		Camera: cam,
		World:  geometry.NewBVH(objects),
		Lights: geometry.NewListOf(lights...),
	}
}
