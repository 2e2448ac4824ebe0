package gallery

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageService turns downloaded gallery images into terminal thumbnails.
//
// Example usage:
//
//	svc := NewImageService()
//
//	thumb, err := svc.Thumbnail(imageData, 32, 32)
//	fmt.Println(RenderHalfBlocks(thumb))
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Thumbnail decodes data and scales it to fit within maxWidth x maxHeight
// pixels, preserving the aspect ratio. Images never grow.
//
// The Catmull-Rom algorithm is used for high-quality scaling.
//
// Example:
//
//	// A 1500x1000 image with bounds 30x30 becomes 30x20
//	thumb, err := svc.Thumbnail(data, 30, 30)
func (s *ImageService) Thumbnail(data []byte, maxWidth, maxHeight int) (image.Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("thumbnail bounds must be positive, got %dx%d", maxWidth, maxHeight)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := FitWithin(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst, nil
}

// FitWithin returns the largest size not exceeding maxWidth x maxHeight
// that keeps the width:height ratio. Sizes already inside the bounds are
// returned unchanged; results are at least 1x1.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	return max(width, 1), max(height, 1)
}
