package geometry

import "fmt"

// Format conversions between the canonical xyxy representation and the two
// other conventions detection models commonly emit. All operations in this
// package work on the canonical form; converting at the boundary once keeps
// format mixups out of the geometry itself.

// XYWH returns the box as top-left corner plus width and height.
func (b Box) XYWH() (x, y, w, h float64) {
	return b.X1, b.Y1, b.Width(), b.Height()
}

// CXCYWH returns the box as center point plus width and height.
func (b Box) CXCYWH() (cx, cy, w, h float64) {
	c := b.Center()
	return c.X, c.Y, b.Width(), b.Height()
}

// FromXYWH creates a Box from a top-left corner and dimensions.
// Non-positive width or height returns ErrInvalidGeometry.
func FromXYWH(x, y, w, h float64) (Box, error) {
	if w <= 0 || h <= 0 {
		return Box{}, fmt.Errorf("%w: dimensions %gx%g must be positive", ErrInvalidGeometry, w, h)
	}
	return New(x, y, x+w, y+h)
}

// FromCXCYWH creates a Box from a center point and dimensions.
// Non-positive width or height returns ErrInvalidGeometry.
func FromCXCYWH(cx, cy, w, h float64) (Box, error) {
	if w <= 0 || h <= 0 {
		return Box{}, fmt.Errorf("%w: dimensions %gx%g must be positive", ErrInvalidGeometry, w, h)
	}
	return New(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}
