package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts r to a 26.6 fixed-point rectangle. Min holds the left and
// bottom edges, Max the right and top edges. Coordinates are rounded to the
// nearest 1/64.
//
// A 26.6 value holds roughly ±2^25. Coordinates outside that range fail with
// ErrOutOfFixedRange instead of wrapping around.
func (r Rect) Fixed() (fixed.Rectangle26_6, error) {
	coords := [4]float64{r.Left(), r.Bottom(), r.Right(), r.Top()}

	var out [4]fixed.Int26_6
	for i, v := range coords {
		f, err := toFixed(v)
		if err != nil {
			return fixed.Rectangle26_6{}, fmt.Errorf("convert %s: %w", r, err)
		}
		out[i] = f
	}

	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: out[0], Y: out[1]},
		Max: fixed.Point26_6{X: out[2], Y: out[3]},
	}, nil
}

// RectFromFixed converts a 26.6 fixed-point rectangle back to a Rect. The
// round trip through Rect.Fixed is subject to 1/64 rounding, so a rectangle
// narrower or shorter than 1/128 comes back as an empty fixed rectangle and
// is rejected like any other zero-size rectangle.
func RectFromFixed(fr fixed.Rectangle26_6) (Rect, error) {
	return NewRect(
		Point{X: fromFixed(fr.Min.X), Y: fromFixed(fr.Max.Y)},
		Point{X: fromFixed(fr.Max.X), Y: fromFixed(fr.Min.Y)},
	)
}

func toFixed(v float64) (fixed.Int26_6, error) {
	scaled := math.Round(v * 64)
	if !(scaled >= math.MinInt32 && scaled <= math.MaxInt32) {
		return 0, fmt.Errorf("%w (%s)", ErrOutOfFixedRange, formatCoord(v))
	}
	return fixed.Int26_6(scaled), nil
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
