package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/menta2k/bboxkit/pkg/geometry"
)

// Text forms accepted by the CLI: a box is "x1,y1,x2,y2", a point is "x,y",
// and a box list separates boxes with semicolons.

// Floats parses a fixed number of comma-separated float values
func Floats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d in %q", n, len(parts), s)
	}

	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", p, s)
		}
		vals[i] = v
	}
	return vals, nil
}

// Box parses a box from its "x1,y1,x2,y2" text form.
func Box(s string) (geometry.Box, error) {
	vals, err := Floats(s, 4)
	if err != nil {
		return geometry.Box{}, err
	}

	b, err := geometry.New(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		return geometry.Box{}, fmt.Errorf("box %q: %w", s, err)
	}
	return b, nil
}

// Point parses a point from its "x,y" text form.
func Point(s string) (geometry.Point, error) {
	vals, err := Floats(s, 2)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: vals[0], Y: vals[1]}, nil
}

// BoxList parses a semicolon-separated list of boxes.
func BoxList(s string) ([]geometry.Box, error) {
	var boxes []geometry.Box
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b, err := Box(part)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// FormatBox renders a box in its canonical text form with the given precision.
func FormatBox(b geometry.Box, precision int) string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatFloat(b.X1, precision), formatFloat(b.Y1, precision),
		formatFloat(b.X2, precision), formatFloat(b.Y2, precision))
}

// FormatPoint renders a point in its canonical text form with the given precision.
func FormatPoint(p geometry.Point, precision int) string {
	return fmt.Sprintf("%s,%s", formatFloat(p.X, precision), formatFloat(p.Y, precision))
}

func formatFloat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
