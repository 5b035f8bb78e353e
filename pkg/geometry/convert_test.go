package geometry

import (
	"errors"
	"testing"
)

func TestXYWH(t *testing.T) {
	b := mustBox(t, 100, 150, 200, 300)

	x, y, w, h := b.XYWH()
	if x != 100 || y != 150 || w != 100 || h != 150 {
		t.Errorf("Expected (100,150,100,150), got (%g,%g,%g,%g)", x, y, w, h)
	}
}

func TestCXCYWH(t *testing.T) {
	b := mustBox(t, 100, 150, 200, 300)

	cx, cy, w, h := b.CXCYWH()
	if cx != 150 || cy != 225 || w != 100 || h != 150 {
		t.Errorf("Expected (150,225,100,150), got (%g,%g,%g,%g)", cx, cy, w, h)
	}
}

func TestXYWHRoundTrip(t *testing.T) {
	boxes := []Box{
		mustBox(t, 100, 150, 200, 300),
		mustBox(t, -50, -20, 10, 30),
		mustBox(t, 0.5, 0.25, 0.75, 0.875),
	}

	for _, b := range boxes {
		back, err := FromXYWH(b.XYWH())
		if err != nil {
			t.Errorf("FromXYWH round-trip of %+v failed: %v", b, err)
			continue
		}
		if !AlmostEqual(b, back, tol) {
			t.Errorf("Expected xywh round-trip to return %+v, got %+v", b, back)
		}
	}
}

func TestCXCYWHRoundTrip(t *testing.T) {
	boxes := []Box{
		mustBox(t, 100, 150, 200, 300),
		mustBox(t, -50, -20, 10, 30),
		mustBox(t, 0.5, 0.25, 0.75, 0.875),
	}

	for _, b := range boxes {
		back, err := FromCXCYWH(b.CXCYWH())
		if err != nil {
			t.Errorf("FromCXCYWH round-trip of %+v failed: %v", b, err)
			continue
		}
		if !AlmostEqual(b, back, tol) {
			t.Errorf("Expected cxcywh round-trip to return %+v, got %+v", b, back)
		}
	}
}

func TestFromXYWHInvalid(t *testing.T) {
	if _, err := FromXYWH(10, 20, 0, 50); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero width, got %v", err)
	}
	if _, err := FromXYWH(10, 20, 50, -5); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for negative height, got %v", err)
	}
}

func TestFromCXCYWHInvalid(t *testing.T) {
	if _, err := FromCXCYWH(10, 20, -1, 50); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for negative width, got %v", err)
	}
	if _, err := FromCXCYWH(10, 20, 50, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero height, got %v", err)
	}
}

func TestFromCXCYWH(t *testing.T) {
	b, err := FromCXCYWH(30, 50, 40, 60)
	if err != nil {
		t.Fatalf("FromCXCYWH failed: %v", err)
	}
	want := Box{X1: 10, Y1: 20, X2: 50, Y2: 80}
	if !AlmostEqual(b, want, tol) {
		t.Errorf("Expected (10,20,50,80), got (%g,%g,%g,%g)", b.X1, b.Y1, b.X2, b.Y2)
	}
}
