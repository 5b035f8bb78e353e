package bboxkit

import (
	"math"
	"testing"

	"github.com/menta2k/bboxkit/pkg/geometry"
)

const tol = 1e-9

func mustBox(t *testing.T, x1, y1, x2, y2 float64) geometry.Box {
	t.Helper()
	b, err := geometry.New(x1, y1, x2, y2)
	if err != nil {
		t.Fatalf("New(%g,%g,%g,%g) failed: %v", x1, y1, x2, y2, err)
	}
	return b
}

func TestNew(t *testing.T) {
	kit := New()
	if kit == nil {
		t.Fatal("New() returned nil")
	}

	if kit.config.ExpandFactor != 1.2 {
		t.Errorf("Expected default expand factor 1.2, got %g", kit.config.ExpandFactor)
	}
	if kit.config.Tolerance != 1e-9 {
		t.Errorf("Expected default tolerance 1e-9, got %g", kit.config.Tolerance)
	}
}

func TestNewWithConfig(t *testing.T) {
	kit := NewWithConfig(Config{ExpandFactor: 2.0, Tolerance: 1e-6})

	if kit.config.ExpandFactor != 2.0 {
		t.Errorf("Expected expand factor 2.0, got %g", kit.config.ExpandFactor)
	}
}

func TestKitExpand(t *testing.T) {
	kit := New()
	b := mustBox(t, 10, 10, 50, 50)

	expanded, err := kit.Expand(b)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// Default factor 1.2 on a 40x40 box gives 48x48 about the same center.
	want := geometry.Box{X1: 6, Y1: 6, X2: 54, Y2: 54}
	if !geometry.AlmostEqual(expanded, want, tol) {
		t.Errorf("Expected (6,6,54,54), got (%g,%g,%g,%g)",
			expanded.X1, expanded.Y1, expanded.X2, expanded.Y2)
	}
}

func TestKitEqual(t *testing.T) {
	kit := New()
	a := mustBox(t, 10, 10, 50, 50)
	b := geometry.Box{X1: 10 + 1e-12, Y1: 10, X2: 50, Y2: 50}

	if !kit.Equal(a, b) {
		t.Error("Expected boxes within tolerance to be equal")
	}
	if kit.Equal(a, mustBox(t, 11, 10, 50, 50)) {
		t.Error("Expected distinct boxes to be unequal")
	}
}

func TestDescribe(t *testing.T) {
	kit := New()
	info := kit.Describe(mustBox(t, 100, 150, 200, 300))

	if info.Width != 100 || info.Height != 150 {
		t.Errorf("Expected 100x150, got %gx%g", info.Width, info.Height)
	}
	if info.Area != 15000 {
		t.Errorf("Expected area 15000, got %g", info.Area)
	}
	if info.Center.X != 150 || info.Center.Y != 225 {
		t.Errorf("Expected center (150,225), got (%g,%g)", info.Center.X, info.Center.Y)
	}
}

func TestCompare(t *testing.T) {
	kit := New()
	a := mustBox(t, 100, 150, 200, 300)
	b := mustBox(t, 180, 160, 280, 310)

	cmp := kit.Compare(a, b)
	if !cmp.Overlaps {
		t.Error("Expected boxes to overlap")
	}
	if cmp.Intersection == nil {
		t.Fatal("Expected a non-nil intersection")
	}
	if cmp.IntersectionArea != 2800 {
		t.Errorf("Expected intersection area 2800, got %g", cmp.IntersectionArea)
	}
	if cmp.UnionArea != 27200 {
		t.Errorf("Expected union area 27200, got %g", cmp.UnionArea)
	}
	if math.Abs(cmp.IoU-2800.0/27200.0) > tol {
		t.Errorf("Expected IoU %.6f, got %.6f", 2800.0/27200.0, cmp.IoU)
	}
}

func TestCompareDisjoint(t *testing.T) {
	kit := New()
	cmp := kit.Compare(mustBox(t, 0, 0, 10, 10), mustBox(t, 20, 20, 30, 30))

	if cmp.Overlaps {
		t.Error("Expected disjoint boxes not to overlap")
	}
	if cmp.Intersection != nil {
		t.Error("Expected nil intersection for disjoint boxes")
	}
	if cmp.IoU != 0 {
		t.Errorf("Expected IoU 0, got %g", cmp.IoU)
	}
}

func TestConvert(t *testing.T) {
	b := mustBox(t, 10, 20, 50, 80)

	tests := []struct {
		format Format
		want   [4]float64
	}{
		{FormatXYXY, [4]float64{10, 20, 50, 80}},
		{FormatXYWH, [4]float64{10, 20, 40, 60}},
		{FormatCXCYWH, [4]float64{30, 50, 40, 60}},
	}

	for _, tt := range tests {
		got, err := Convert(b, tt.format)
		if err != nil {
			t.Errorf("Convert to %s failed: %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Convert to %s: expected %v, got %v", tt.format, tt.want, got)
		}
	}

	if _, err := Convert(b, Format("polar")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFromValuesRoundTrip(t *testing.T) {
	b := mustBox(t, 10, 20, 50, 80)

	for _, format := range []Format{FormatXYXY, FormatXYWH, FormatCXCYWH} {
		vals, err := Convert(b, format)
		if err != nil {
			t.Fatalf("Convert to %s failed: %v", format, err)
		}
		back, err := FromValues(vals, format)
		if err != nil {
			t.Fatalf("FromValues from %s failed: %v", format, err)
		}
		if !geometry.AlmostEqual(b, back, tol) {
			t.Errorf("%s round-trip: expected %+v, got %+v", format, b, back)
		}
	}

	if _, err := FromValues([4]float64{1, 2, 3, 4}, Format("polar")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
