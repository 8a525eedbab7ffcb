package geom

import (
	"fmt"
	"iter"
	"slices"
)

// BoundingBox returns the smallest rectangle containing every point. Its
// corners are (min X, max Y) and (max X, min Y).
//
// It fails with ErrNoPoints for an empty set, and with ErrNonPositiveWidth or
// ErrNonPositiveHeight when the points share a single X or Y coordinate.
func BoundingBox(points ...Point) (Rect, error) {
	return BoundingBoxSeq(slices.Values(points))
}

// BoundingBoxSeq is like BoundingBox but consumes a sequence. The sequence is
// ranged over exactly once.
func BoundingBoxSeq(points iter.Seq[Point]) (Rect, error) {
	var (
		minX, maxX, minY, maxY float64
		n                      int
	)

	for p := range points {
		if n == 0 {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
		} else {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
		n++
	}

	if n == 0 {
		return Rect{}, ErrNoPoints
	}

	r, err := NewRect(Point{X: minX, Y: maxY}, Point{X: maxX, Y: minY})
	if err != nil {
		return Rect{}, fmt.Errorf("bounding box of %d points: %w", n, err)
	}
	return r, nil
}
