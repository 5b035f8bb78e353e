// Package crop applies box geometry to in-memory images. It never touches
// files or the network; decoding and encoding belong to the caller.
package crop

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/menta2k/bboxkit/pkg/geometry"
)

// ImageRect converts a box to an image.Rectangle, rounding each coordinate
// to the nearest pixel.
func ImageRect(b geometry.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X1)), int(math.Round(b.Y1)),
		int(math.Round(b.X2)), int(math.Round(b.Y2)),
	)
}

// FromImageRect converts an image.Rectangle to a Box.
// Empty rectangles return ErrInvalidGeometry.
func FromImageRect(r image.Rectangle) (geometry.Box, error) {
	return geometry.New(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// BoundsRect returns the bounds of img as a geometry.Rect.
func BoundsRect(img image.Image) geometry.Rect {
	b := img.Bounds()
	return geometry.Rect{
		X1: float64(b.Min.X), Y1: float64(b.Min.Y),
		X2: float64(b.Max.X), Y2: float64(b.Max.Y),
	}
}

// Crop extracts the region of img covered by b. The box is clipped to the
// image bounds first; a box that covers no pixels of the image is an error.
func Crop(img image.Image, b geometry.Box) (image.Image, error) {
	rect := ImageRect(b).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("box (%g,%g)(%g,%g) covers no pixels of the image %v",
			b.X1, b.Y1, b.X2, b.Y2, img.Bounds())
	}
	return imaging.Crop(img, rect), nil
}

// CropResize extracts the region covered by b and scales it to exactly
// width x height, center-cropping as needed to keep the target aspect ratio.
func CropResize(img image.Image, b geometry.Box, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("target size %dx%d must be positive", width, height)
	}

	cropped, err := Crop(img, b)
	if err != nil {
		return nil, err
	}
	return imaging.Fill(cropped, width, height, imaging.Center, imaging.Lanczos), nil
}

// CropExpanded grows b about its center by factor before cropping, so the
// result keeps some context around the subject.
func CropExpanded(img image.Image, b geometry.Box, factor float64) (image.Image, error) {
	expanded, err := b.Expand(factor)
	if err != nil {
		return nil, fmt.Errorf("expand before crop: %w", err)
	}
	return Crop(img, expanded)
}
