package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG tone-maps fb at spp samples per pixel and writes the result
// as an 8-bit RGB PNG at path, grounded on the teacher's saveImageToFile
// (mkdir -p the parent, create, defer close, png.Encode).
func WritePNG(fb *Framebuffer, spp int, path string) error {
	rgb := fb.ToneMap(spp)

	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			idx := (j*fb.Width + i) * 3
			offset := img.PixOffset(i, j)
			img.Pix[offset+0] = rgb[idx+0]
			img.Pix[offset+1] = rgb[idx+1]
			img.Pix[offset+2] = rgb[idx+2]
			img.Pix[offset+3] = 255
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
