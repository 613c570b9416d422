package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rlowe/pathtracer/pkg/core"
)

func TestWritePNGProducesDecodableImage(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 1, 1))
	fb.Set(1, 0, core.Vec3{})
	fb.Set(0, 1, core.NewVec3(0.5, 0.5, 0.5))
	fb.Set(1, 1, core.NewVec3(1, 0, 0))

	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := WritePNG(fb, 1, path); err != nil {
		t.Fatalf("WritePNG returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written png: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("failed to decode written png: %v", err)
	}
	bounds := img.Bounds()
	if bounds != image.Rect(0, 0, 2, 2) {
		t.Errorf("decoded image bounds = %v, want 0,0,2,2", bounds)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if a>>8 != 255 {
		t.Errorf("alpha = %v, want opaque 255", a>>8)
	}
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("white pixel decoded as (%d,%d,%d), want (255,255,255)", r>>8, g>>8, b>>8)
	}
}
