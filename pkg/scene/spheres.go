package scene

import (
	"github.com/rlowe/pathtracer/pkg/camera"
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/geometry"
	"github.com/rlowe/pathtracer/pkg/material"
	"github.com/rlowe/pathtracer/pkg/texture"
)

// NewBouncingSpheres builds a large checkered ground sphere under a glass,
// a diffuse, and a metal sphere, plus one small moving (motion-blurred)
// sphere, lit by a constant sky-blue background rather than emissive
// geometry (grounded on the teacher's NewDefaultScene layout, generalized
// to the spec's moving-sphere and checker-texture support).
func NewBouncingSpheres(sampler *core.Sampler) *Scene {
	cfg := camera.DefaultConfig()
	cfg.AspectRatio = 16.0 / 9.0
	cfg.ImageWidth = 400
	cfg.SamplesPerPixel = 100
	cfg.MaxDepth = 50
	cfg.VFOV = 20
	cfg.LookFrom = core.NewVec3(13, 2, 3)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.VUp = core.NewVec3(0, 1, 0)
	cfg.DefocusAngle = 0.6
	cfg.FocusDist = 10.0
	cfg.Background = core.NewVec3(0.7, 0.8, 1.0)
	cam := camera.New(cfg)

	checker := texture.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	groundMat := material.NewLambertian(checker)

	objects := geometry.NewList()
	objects.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMat))

	glass := material.NewDielectric(1.5)
	diffuse := material.NewLambertianColor(core.NewVec3(0.4, 0.2, 0.1))
	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)

	objects.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass))
	objects.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse))
	objects.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal))

	movingCenter0 := core.NewVec3(-2, 0.2, -2)
	movingCenter1 := movingCenter0.Add(core.NewVec3(0, sampler.Range(0, 0.5), 0))
	movingMat := material.NewLambertianColor(core.NewVec3(0.6, 0.1, 0.1))
	objects.Add(geometry.NewMovingSphere(movingCenter0, movingCenter1, 0.2, movingMat))

	return Build(cam, objects.Objects, nil)
}
