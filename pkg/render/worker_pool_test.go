package render

import (
	"testing"

	"github.com/rlowe/pathtracer/pkg/camera"
	"github.com/rlowe/pathtracer/pkg/core"
	"github.com/rlowe/pathtracer/pkg/material"
)

// flatWorld never hits anything, so every pixel's accumulated sum should
// equal the camera's background color times the stratified sample count.
type flatWorld struct{}

func (flatWorld) Hit(r core.Ray, rayT core.Interval, sampler *core.Sampler) (material.HitRecord, bool) {
	return material.HitRecord{}, false
}

type noLights struct{}

func (noLights) PDFValue(origin, direction core.Vec3) float64 { return 0 }
func (noLights) Random(s *core.Sampler, origin core.Vec3) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}

func TestRenderFillsEveryPixelOnMiss(t *testing.T) {
	cfg := camera.DefaultConfig()
	cfg.ImageWidth = 8
	cfg.AspectRatio = 1
	cfg.SamplesPerPixel = 1
	cfg.Background = core.NewVec3(0.5, 0.5, 0.5)
	cam := camera.New(cfg)

	fb := Render(cam, flatWorld{}, noLights{}, Options{NumWorkers: 2})

	if fb.Width != cam.ImageWidth || fb.Height != cam.ImageHeight {
		t.Fatalf("framebuffer size = %dx%d, want %dx%d", fb.Width, fb.Height, cam.ImageWidth, cam.ImageHeight)
	}

	spp := cam.SqrtSPP() * cam.SqrtSPP()
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			got := fb.At(i, j)
			want := cfg.Background.Multiply(float64(spp))
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestRenderDefaultsWorkerCount(t *testing.T) {
	cfg := camera.DefaultConfig()
	cfg.ImageWidth = 4
	cfg.AspectRatio = 1
	cfg.SamplesPerPixel = 1
	cam := camera.New(cfg)

	fb := Render(cam, flatWorld{}, noLights{}, Options{})
	if fb.Width != cam.ImageWidth {
		t.Errorf("Render with NumWorkers=0 produced width %d, want %d", fb.Width, cam.ImageWidth)
	}
}
