package geometry

import "math"

// Rect is a rectangle with a relaxed invariant: X1 <= X2 and Y1 <= Y2.
// Unlike Box it can represent the degenerate zero-width or zero-height
// rectangles that arise when two boxes touch along an edge, which is exactly
// what Intersect and Clip produce in those cases.
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// RectOf returns the Rect covering the same extent as b.
func RectOf(b Box) Rect {
	return Rect{X1: b.X1, Y1: b.Y1, X2: b.X2, Y2: b.Y2}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Area returns the rectangle area, treating negative extents as zero.
func (r Rect) Area() float64 {
	return math.Max(0, r.X2-r.X1) * math.Max(0, r.Y2-r.Y1)
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Area() == 0
}

// Box converts the rectangle into a strict Box.
// Degenerate rectangles return ErrInvalidGeometry.
func (r Rect) Box() (Box, error) {
	return New(r.X1, r.Y1, r.X2, r.Y2)
}
