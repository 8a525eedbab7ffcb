package geom

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestRectFixed(t *testing.T) {
	r := MustRect(Pt(1.5, 10), Pt(4, 2.25))

	got, err := r.Fixed()
	if err != nil {
		t.Fatalf("Fixed() error = %v", err)
	}
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.I(1) + 32, Y: fixed.I(2) + 16},
		Max: fixed.Point26_6{X: fixed.I(4), Y: fixed.I(10)},
	}
	if got != want {
		t.Errorf("Fixed() = %v, want %v", got, want)
	}

	back, err := RectFromFixed(got)
	if err != nil {
		t.Fatalf("RectFromFixed() error = %v", err)
	}
	if back != r {
		t.Errorf("RectFromFixed(Fixed()) = %v, want %v", back, r)
	}
}

func TestRectFixedRounding(t *testing.T) {
	r := MustRect(Pt(0.001, 1), Pt(1, 0.999))

	got, err := r.Fixed()
	if err != nil {
		t.Fatalf("Fixed() error = %v", err)
	}
	if got.Min.X != 0 || got.Min.Y != 64 {
		t.Errorf("Fixed() = %v, want coordinates rounded to 1/64", got)
	}
}

func TestRectFixedRoundTripTooNarrow(t *testing.T) {
	r := MustRect(Pt(1, 2), Pt(1+1.0/256, 1))

	got, err := r.Fixed()
	if err != nil {
		t.Fatalf("Fixed() error = %v", err)
	}
	if got.Min.X != got.Max.X {
		t.Errorf("Fixed() = %v, want zero width after rounding", got)
	}
	if _, err := RectFromFixed(got); !errors.Is(err, ErrNonPositiveWidth) {
		t.Errorf("RectFromFixed() error = %v, want ErrNonPositiveWidth", err)
	}
}

func TestRectFixedOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"huge", MustRect(Pt(-1e9, 1e9), Pt(1e9, -1e9))},
		{"right edge too far", MustRect(Pt(0, 1), Pt(1<<25, 0))},
		{"bottom edge too far", MustRect(Pt(0, 1), Pt(1, -(1<<25)-1))},
		{"infinite", MustRect(Pt(0, 1), Pt(math.Inf(1), 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Fixed()
			if !errors.Is(err, ErrOutOfFixedRange) {
				t.Fatalf("Fixed() error = %v, want ErrOutOfFixedRange", err)
			}
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("error %v is not ErrInvalidGeometry", err)
			}
			if got != (fixed.Rectangle26_6{}) {
				t.Errorf("Fixed() = %v, want zero value on error", got)
			}
		})
	}
}

func TestRectFixedRangeLimits(t *testing.T) {
	// Largest and smallest representable edges.
	r := MustRect(Pt(-(1 << 25), float64(math.MaxInt32)/64), Pt(float64(math.MaxInt32)/64, -(1 << 25)))

	got, err := r.Fixed()
	if err != nil {
		t.Fatalf("Fixed() error = %v", err)
	}
	if got.Max.X != math.MaxInt32 || got.Min.X != math.MinInt32 {
		t.Errorf("Fixed() = %v, want int32 limits", got)
	}
}

func TestRectFromFixedEmpty(t *testing.T) {
	empty := fixed.R(3, 3, 3, 8)
	if _, err := RectFromFixed(empty); !errors.Is(err, ErrNonPositiveWidth) {
		t.Errorf("RectFromFixed() error = %v, want ErrNonPositiveWidth", err)
	}
}
