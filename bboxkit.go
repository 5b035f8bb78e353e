// Package bboxkit provides bounding-box geometry primitives for computer
// vision code.
//
// The toolkit is built around a single canonical representation: an
// axis-aligned box stored as top-left and bottom-right corners (xyxy) in
// image coordinates, with the origin at the top-left and Y increasing
// downward. Detection models emit boxes in several conventions (xywh,
// cxcywh, normalized fractions); converting to the canonical form at the
// boundary keeps format mixups out of the geometry itself.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/menta2k/bboxkit/pkg/geometry"
//	)
//
//	func main() {
//		player, err := geometry.New(100, 150, 200, 300)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		ball := geometry.Point{X: 150, Y: 225}
//		fmt.Println("ball in player box:", player.Contains(ball))
//
//		other, _ := geometry.New(180, 160, 280, 310)
//		fmt.Printf("IoU: %.4f\n", geometry.IoU(player, other))
//	}
//
// The module consists of two functional packages plus this facade:
//
// 1. Geometry (pkg/geometry): the pure value types and operations
// 2. Crop (pkg/crop): applying boxes to in-memory images
//
// Every operation in pkg/geometry is a pure function of immutable values, so
// the whole surface is safe for concurrent use without synchronization.
//
// Policy defaults such as the conventional 1.2 context-expansion factor live
// in the Kit wrapper in this package, never in pkg/geometry: the core takes
// every parameter explicitly.
package bboxkit

import (
	"fmt"

	"github.com/menta2k/bboxkit/pkg/geometry"
)

// Version of the bboxkit library
const Version = "1.0.0"

// Config holds the policy defaults applied by a Kit.
type Config struct {
	// ExpandFactor is the factor Kit.Expand applies, conventionally 1.2
	// to capture a little context around a detection.
	ExpandFactor float64
	// Tolerance is the per-coordinate tolerance Kit.Equal uses.
	Tolerance float64
}

// Kit bundles the geometry operations with policy defaults for callers that
// do not want to thread factors and tolerances through every call site.
type Kit struct {
	config Config
}

// New creates a Kit with default configuration
func New() *Kit {
	return &Kit{
		config: Config{
			ExpandFactor: 1.2,
			Tolerance:    1e-9,
		},
	}
}

// NewWithConfig creates a Kit with custom configuration
func NewWithConfig(config Config) *Kit {
	return &Kit{config: config}
}

// Expand scales the box about its center by the configured default factor.
func (k *Kit) Expand(b geometry.Box) (geometry.Box, error) {
	return b.Expand(k.config.ExpandFactor)
}

// Equal reports whether two boxes match within the configured tolerance.
func (k *Kit) Equal(a, b geometry.Box) bool {
	return geometry.AlmostEqual(a, b, k.config.Tolerance)
}

// BoxInfo summarizes the derived properties of a box.
type BoxInfo struct {
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Center      geometry.Point `json:"center"`
	Area        float64        `json:"area"`
	AspectRatio float64        `json:"aspect_ratio"`
}

// Describe returns the derived properties of a box.
func (k *Kit) Describe(b geometry.Box) BoxInfo {
	return BoxInfo{
		Width:       b.Width(),
		Height:      b.Height(),
		Center:      b.Center(),
		Area:        b.Area(),
		AspectRatio: b.AspectRatio(),
	}
}

// Comparison summarizes the spatial relationship between two boxes.
type Comparison struct {
	Overlaps         bool           `json:"overlaps"`
	Intersection     *geometry.Rect `json:"intersection,omitempty"`
	IntersectionArea float64        `json:"intersection_area"`
	UnionArea        float64        `json:"union_area"`
	IoU              float64        `json:"iou"`
}

// Compare computes the overlap relationship between two boxes.
func (k *Kit) Compare(a, b geometry.Box) Comparison {
	cmp := Comparison{
		Overlaps:  geometry.Overlaps(a, b),
		UnionArea: a.Area() + b.Area(),
		IoU:       geometry.IoU(a, b),
	}
	if inter, ok := geometry.Intersect(a, b); ok {
		cmp.Intersection = &inter
		cmp.IntersectionArea = inter.Area()
	}
	cmp.UnionArea -= cmp.IntersectionArea
	return cmp
}

// Format identifies a bounding-box text format.
type Format string

// Supported formats
const (
	FormatXYXY   Format = "xyxy"
	FormatXYWH   Format = "xywh"
	FormatCXCYWH Format = "cxcywh"
)

// Convert renders b in the requested format as four values.
func Convert(b geometry.Box, to Format) ([4]float64, error) {
	switch to {
	case FormatXYXY:
		return [4]float64{b.X1, b.Y1, b.X2, b.Y2}, nil
	case FormatXYWH:
		x, y, w, h := b.XYWH()
		return [4]float64{x, y, w, h}, nil
	case FormatCXCYWH:
		cx, cy, w, h := b.CXCYWH()
		return [4]float64{cx, cy, w, h}, nil
	default:
		return [4]float64{}, fmt.Errorf("unsupported format: %q", to)
	}
}

// FromValues creates a Box from four values in the given format.
func FromValues(vals [4]float64, from Format) (geometry.Box, error) {
	switch from {
	case FormatXYXY:
		return geometry.New(vals[0], vals[1], vals[2], vals[3])
	case FormatXYWH:
		return geometry.FromXYWH(vals[0], vals[1], vals[2], vals[3])
	case FormatCXCYWH:
		return geometry.FromCXCYWH(vals[0], vals[1], vals[2], vals[3])
	default:
		return geometry.Box{}, fmt.Errorf("unsupported format: %q", from)
	}
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
