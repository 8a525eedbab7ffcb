package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with strictly positive width and height.
// Valid values come from NewRect, MustRect, or the operations in this package
// applied to valid rectangles. The zero Rect is not a valid rectangle.
type Rect struct {
	topLeft     Point
	bottomRight Point
}

// NewRect creates a rectangle from its top-left and bottom-right corners.
// It fails with ErrNonPositiveWidth when topLeft.X >= bottomRight.X and with
// ErrNonPositiveHeight when topLeft.Y <= bottomRight.Y.
func NewRect(topLeft, bottomRight Point) (Rect, error) {
	if !(topLeft.X < bottomRight.X) {
		return Rect{}, fmt.Errorf("%w (left %s, right %s)",
			ErrNonPositiveWidth, formatCoord(topLeft.X), formatCoord(bottomRight.X))
	}
	if !(topLeft.Y > bottomRight.Y) {
		return Rect{}, fmt.Errorf("%w (top %s, bottom %s)",
			ErrNonPositiveHeight, formatCoord(topLeft.Y), formatCoord(bottomRight.Y))
	}
	return Rect{topLeft: topLeft, bottomRight: bottomRight}, nil
}

// MustRect is like NewRect but panics if the corners are invalid.
func MustRect(topLeft, bottomRight Point) Rect {
	r, err := NewRect(topLeft, bottomRight)
	if err != nil {
		panic(err)
	}
	return r
}

// IsZero reports whether r is the zero Rect, which no constructor returns.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// TopLeft returns the top-left corner
func (r Rect) TopLeft() Point {
	return r.topLeft
}

// BottomRight returns the bottom-right corner
func (r Rect) BottomRight() Point {
	return r.bottomRight
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.topLeft.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.bottomRight.X
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.topLeft.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.bottomRight.Y
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.bottomRight.X - r.topLeft.X
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.topLeft.Y - r.bottomRight.Y
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Perimeter returns the length of the boundary
func (r Rect) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

// Diagonal returns the distance between opposite corners
func (r Rect) Diagonal() float64 {
	w, h := r.Width(), r.Height()
	return math.Sqrt(w*w + h*h)
}

// Center returns the center point
func (r Rect) Center() Point {
	return r.topLeft.midpoint(r.bottomRight)
}

// Contains checks if a point is inside the rectangle or on its boundary
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Bottom() && p.Y <= r.Top()
}

// IntersectsWith reports whether two rectangles share at least one point.
// Rectangles whose edges only touch intersect.
func (r Rect) IntersectsWith(other Rect) bool {
	return !(r.Right() < other.Left() ||
		other.Right() < r.Left() ||
		r.Top() < other.Bottom() ||
		other.Top() < r.Bottom())
}

// Intersection returns the overlapping region of two rectangles. The second
// result is false when the overlap has no area, including rectangles that
// only touch.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.IntersectsWith(other) {
		return Rect{}, false
	}

	left := math.Max(r.Left(), other.Left())
	right := math.Min(r.Right(), other.Right())
	top := math.Min(r.Top(), other.Top())
	bottom := math.Max(r.Bottom(), other.Bottom())

	overlap, err := NewRect(Point{X: left, Y: top}, Point{X: right, Y: bottom})
	if err != nil {
		return Rect{}, false
	}
	return overlap, true
}

// Union returns the smallest rectangle containing both rectangles. The union
// of two zero Rects is the zero Rect.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		topLeft: Point{
			X: math.Min(r.Left(), other.Left()),
			Y: math.Max(r.Top(), other.Top()),
		},
		bottomRight: Point{
			X: math.Max(r.Right(), other.Right()),
			Y: math.Min(r.Bottom(), other.Bottom()),
		},
	}
}

// Expand grows the rectangle by margin on all sides. A negative margin
// shrinks it, and shrinking to zero or beyond fails.
func (r Rect) Expand(margin float64) (Rect, error) {
	expanded, err := NewRect(
		Point{X: r.Left() - margin, Y: r.Top() + margin},
		Point{X: r.Right() + margin, Y: r.Bottom() - margin},
	)
	if err != nil {
		return Rect{}, fmt.Errorf("expand by %s: %w", formatCoord(margin), err)
	}
	return expanded, nil
}

// String returns the rectangle as "[topLeft - bottomRight]".
func (r Rect) String() string {
	return "[" + r.topLeft.String() + " - " + r.bottomRight.String() + "]"
}
