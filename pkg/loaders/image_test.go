package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
}

func TestLoadImageDecodesDimensionsAndPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solid.png")
	writeTestPNG(t, path, 3, 2, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	data, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage returned error: %v", err)
	}
	if data.Width != 3 || data.Height != 2 {
		t.Fatalf("LoadImage dims = %dx%d, want 3x2", data.Width, data.Height)
	}
	if len(data.Pixels) != 6 {
		t.Fatalf("len(Pixels) = %d, want 6", len(data.Pixels))
	}
	px := data.Pixels[0]
	if px.X < 0.99 || px.Y > 0.01 || px.Z > 0.01 {
		t.Errorf("decoded red pixel = %v, want ~(1,0,0)", px)
	}
}

func TestLoadImageMissingFileErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error loading a nonexistent image file")
	}
}
