// Package loaders implements the two collaborator interfaces spec §6
// leaves unspecified in detail: image decoding into linear Vec3 pixels,
// and mesh decoding into Triangle lists.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/rlowe/pathtracer/pkg/core"
)

// ImageData is the decoded (width, height, row-major RGB) triple spec
// §6 specifies as the image-loader's output, stored as normalized Vec3
// colors rather than raw bytes so it plugs directly into texture.Image.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG or JPEG file (auto-detected from its header)
// into an ImageData.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r)/65535.0, float64(g)/65535.0, float64(b)/65535.0)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}
