package geom

import (
	"math"
	"strconv"
)

// Tolerance is the largest coordinate difference at which two points are
// still considered equal.
const Tolerance = 1e-10

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo calculates the Euclidean distance to another point
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Equal reports whether both coordinate deltas are strictly less than
// Tolerance. The relation is not transitive.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < Tolerance &&
		math.Abs(p.Y-other.Y) < Tolerance
}

// midpoint returns the point halfway between p and other.
func (p Point) midpoint(other Point) Point {
	return Point{
		X: (p.X + other.X) / 2,
		Y: (p.Y + other.Y) / 2,
	}
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
