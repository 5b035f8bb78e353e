package geometry

import "fmt"

// Box is an axis-aligned rectangle in image coordinates, stored in canonical
// xyxy form: (X1, Y1) is the top-left corner, (X2, Y2) the bottom-right
// corner. Boxes produced by the constructors always satisfy X1 < X2 and
// Y1 < Y2. Negative coordinates are allowed so that off-frame geometry stays
// representable; clamping to an image is a separate, explicit step (Clip).
//
// A Box is a plain value. Two boxes with equal coordinates are
// interchangeable and copying is always safe.
type Box struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// New creates a Box from its top-left and bottom-right corners.
// It returns ErrInvalidGeometry unless x1 < x2 and y1 < y2.
func New(x1, y1, x2, y2 float64) (Box, error) {
	if x1 >= x2 || y1 >= y2 {
		return Box{}, fmt.Errorf("%w: corners (%g,%g)(%g,%g) must satisfy x1 < x2 and y1 < y2",
			ErrInvalidGeometry, x1, y1, x2, y2)
	}
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Y2 - b.Y1
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

// Area returns the area of the box.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// AspectRatio returns width divided by height.
func (b Box) AspectRatio() float64 {
	return b.Width() / b.Height()
}

// BottomCenter returns the bottom-center point of the box, where a detected
// subject standing on the ground touches it.
func (b Box) BottomCenter() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: b.Y2}
}

// Contains reports whether p lies inside the box. Points exactly on an edge
// count as contained.
func (b Box) Contains(p Point) bool {
	return b.X1 <= p.X && p.X <= b.X2 && b.Y1 <= p.Y && p.Y <= b.Y2
}

// Expand scales the box about its center by factor. A factor of 1.0 is the
// identity; factor <= 0 returns ErrInvalidGeometry.
func (b Box) Expand(factor float64) (Box, error) {
	if factor <= 0 {
		return Box{}, fmt.Errorf("%w: expand factor must be positive, got %g", ErrInvalidGeometry, factor)
	}
	c := b.Center()
	halfW := b.Width() * factor / 2
	halfH := b.Height() * factor / 2
	return Box{X1: c.X - halfW, Y1: c.Y - halfH, X2: c.X + halfW, Y2: c.Y + halfH}, nil
}

// GrowToAspect grows the box about its center, never shrinking either
// dimension, until its width/height ratio equals ratio.
// A non-positive ratio returns ErrInvalidGeometry.
func (b Box) GrowToAspect(ratio float64) (Box, error) {
	if ratio <= 0 {
		return Box{}, fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidGeometry, ratio)
	}

	w, h := b.Width(), b.Height()
	current := w / h
	out := b
	if current < ratio {
		// Too narrow, widen.
		dx := (h*ratio - w) / 2
		out.X1 -= dx
		out.X2 += dx
	} else if current > ratio {
		// Too wide, heighten.
		dy := (w/ratio - h) / 2
		out.Y1 -= dy
		out.Y2 += dy
	}
	return out, nil
}

// Normalize converts absolute pixel coordinates to fractions of the given
// image dimensions, in [0,1] for boxes inside the image.
// Non-positive dimensions return ErrInvalidGeometry.
func (b Box) Normalize(imgW, imgH float64) (Box, error) {
	if imgW <= 0 || imgH <= 0 {
		return Box{}, fmt.Errorf("%w: image dimensions %gx%g must be positive", ErrInvalidGeometry, imgW, imgH)
	}
	return Box{X1: b.X1 / imgW, Y1: b.Y1 / imgH, X2: b.X2 / imgW, Y2: b.Y2 / imgH}, nil
}

// Denormalize converts a normalized box back to absolute pixel coordinates
// for an image of the given dimensions.
// Non-positive dimensions return ErrInvalidGeometry.
func (b Box) Denormalize(imgW, imgH float64) (Box, error) {
	if imgW <= 0 || imgH <= 0 {
		return Box{}, fmt.Errorf("%w: image dimensions %gx%g must be positive", ErrInvalidGeometry, imgW, imgH)
	}
	return Box{X1: b.X1 * imgW, Y1: b.Y1 * imgH, X2: b.X2 * imgW, Y2: b.Y2 * imgH}, nil
}

// Clip clamps the box to bounds. The result is a Rect because it may be
// degenerate: a box partially outside bounds loses the outside part, and a
// box fully outside collapses to a zero-area sliver on the nearest edge.
func (b Box) Clip(bounds Rect) Rect {
	return Rect{
		X1: clamp(b.X1, bounds.X1, bounds.X2),
		Y1: clamp(b.Y1, bounds.Y1, bounds.Y2),
		X2: clamp(b.X2, bounds.X1, bounds.X2),
		Y2: clamp(b.Y2, bounds.Y1, bounds.Y2),
	}
}

// clamp ensures a value is within the given bounds
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
