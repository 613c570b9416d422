package scene

import (
	"github.com/rlowe/pathtracer/pkg/camera"
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/geometry"
	"github.com/rlowe/pathtracer/pkg/material"
)

// NewCornellBox builds the classic 555-unit Cornell box: five Lambertian
// walls, a ceiling light, a rotated Lambertian box and a glass sphere,
// viewed head-on (grounded on the teacher's NewCornellScene
// wall/box layout, generalized to the spec's Hittable/Material
// contract).
func NewCornellBox() *Scene {
	cfg := camera.DefaultConfig()
	cfg.AspectRatio = 1.0
	cfg.ImageWidth = 400
	cfg.SamplesPerPixel = 200
	cfg.MaxDepth = 40
	cfg.VFOV = 40
	cfg.LookFrom = core.NewVec3(278, 278, -800)
	cfg.LookAt = core.NewVec3(278, 278, 0)
	cfg.VUp = core.NewVec3(0, 1, 0)
	cfg.DefocusAngle = 0
	cfg.FocusDist = 800
	cfg.Background = core.Vec3{}
	cam := camera.New(cfg)

	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))
	glass := material.NewDielectric(1.5)

	const box = 555.0

	objects := geometry.NewList()
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, box, 0), core.NewVec3(0, 0, box), green))
	objects.Add(geometry.NewQuad(core.NewVec3(box, 0, 0), core.NewVec3(0, box, 0), core.NewVec3(0, 0, box), red))
	objects.Add(geometry.NewQuad(core.NewVec3(0, box, 0), core.NewVec3(box, 0, 0), core.NewVec3(0, 0, box), white))
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(box, 0, 0), core.NewVec3(0, 0, box), white))
	objects.Add(geometry.NewQuad(core.NewVec3(0, 0, box), core.NewVec3(box, 0, 0), core.NewVec3(0, box, 0), white))

	lightCorner := core.NewVec3(343, box-0.01, 332)
	lightU := core.NewVec3(-130, 0, 0)
	lightV := core.NewVec3(0, 0, -105)
	lightQuad := geometry.NewQuad(lightCorner, lightU, lightV, light)
	objects.Add(lightQuad)

	tallBox := geometry.NewRotateY(geometry.MakeBox(core.Vec3{}, core.NewVec3(165, 330, 165), white), 15)
	objects.Add(geometry.NewTranslate(tallBox, core.NewVec3(265, 0, 295)))

	objects.Add(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass))

	lights := geometry.NewListOf(lightQuad)

	return Build(cam, objects.Objects, lights.Objects)
}
