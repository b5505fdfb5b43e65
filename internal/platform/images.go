package platform

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

// Thumbnail constraints
const (
	MinThumbnailHeight = 16
	MaxThumbnailHeight = 1024
)

// LoadThumbnail decodes the image at path and scales it to the given height,
// preserving aspect ratio. Width is derived from the original bounds so
// portrait and landscape photos both keep their proportions in list rows.
func LoadThumbnail(path string, height uint) (image.Image, error) {
	if height < MinThumbnailHeight {
		height = MinThumbnailHeight
	}
	if height > MaxThumbnailHeight {
		height = MaxThumbnailHeight
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s has zero height", path)
	}

	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	width := uint(float64(height) * aspectRatio)

	return resize.Resize(width, height, img, resize.Lanczos3), nil
}

// SaveThumbnail writes a scaled image to path, choosing the encoder from the
// file extension. Only png and jpeg are supported.
func SaveThumbnail(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".png"):
		return png.Encode(file, img)
	case strings.HasSuffix(strings.ToLower(path), ".jpg"),
		strings.HasSuffix(strings.ToLower(path), ".jpeg"):
		return jpeg.Encode(file, img, nil)
	default:
		return fmt.Errorf("unsupported image format: %s", path)
	}
}
