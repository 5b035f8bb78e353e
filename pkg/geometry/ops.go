package geometry

import (
	"fmt"
	"math"
)

// Overlaps reports whether a and b share any area or touch along an edge.
// The comparison is inclusive to match Box.Contains: boxes that only touch
// still count as overlapping.
func Overlaps(a, b Box) bool {
	return !(a.X2 < b.X1 || b.X2 < a.X1 || a.Y2 < b.Y1 || b.Y2 < a.Y1)
}

// Intersect returns the shared rectangle of a and b. The second return value
// is false when the boxes are disjoint. Boxes that only touch along an edge
// yield a degenerate zero-area Rect and true.
func Intersect(a, b Box) (Rect, bool) {
	if !Overlaps(a, b) {
		return Rect{}, false
	}
	return Rect{
		X1: math.Max(a.X1, b.X1),
		Y1: math.Max(a.Y1, b.Y1),
		X2: math.Min(a.X2, b.X2),
		Y2: math.Min(a.Y2, b.Y2),
	}, true
}

// Union returns the smallest box covering both a and b.
func Union(a, b Box) Box {
	return Box{
		X1: math.Min(a.X1, b.X1),
		Y1: math.Min(a.Y1, b.Y1),
		X2: math.Max(a.X2, b.X2),
		Y2: math.Max(a.Y2, b.Y2),
	}
}

// IoU returns the intersection-over-union of a and b, in [0,1]. Disjoint
// boxes score 0. A non-positive union area also scores 0 rather than
// dividing by zero.
func IoU(a, b Box) float64 {
	inter, ok := Intersect(a, b)
	if !ok {
		return 0
	}

	interArea := inter.Area()
	unionArea := a.Area() + b.Area() - interArea
	if unionArea <= 0 {
		return 0
	}
	return interArea / unionArea
}

// Closest returns the box whose center is nearest to p by Euclidean
// distance. Ties keep the earliest candidate. An empty candidate list
// returns ErrEmptyInput.
func Closest(p Point, boxes []Box) (Box, error) {
	if len(boxes) == 0 {
		return Box{}, fmt.Errorf("%w: no candidate boxes", ErrEmptyInput)
	}

	best := boxes[0]
	bestDist := p.Distance(best.Center())
	for _, b := range boxes[1:] {
		if d := p.Distance(b.Center()); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, nil
}

// AlmostEqual reports whether every coordinate of a and b is within tol.
func AlmostEqual(a, b Box, tol float64) bool {
	return math.Abs(a.X1-b.X1) <= tol &&
		math.Abs(a.Y1-b.Y1) <= tol &&
		math.Abs(a.X2-b.X2) <= tol &&
		math.Abs(a.Y2-b.Y2) <= tol
}
