// Package geom provides immutable 2D geometry primitives.
//
// Coordinates follow a Y-up convention: a rectangle's top-left corner has the
// smallest X and the largest Y.
//
// # Points
//
// [Point] is a plain coordinate pair. Floating-point results such as centers
// and bounding boxes rarely compare bitwise equal, so points are compared with
// [Point.Equal], which treats coordinates closer than [Tolerance] as equal:
//
//	p := geom.Pt(0, 0)
//	p.Equal(geom.Pt(1e-11, 0)) // true
//	p.DistanceTo(geom.Pt(3, 4)) // 5
//
// # Rectangles
//
// [Rect] is an axis-aligned rectangle defined by its top-left and bottom-right
// corners. Width and height must be strictly positive, so construction can
// fail:
//
//	r, err := geom.NewRect(geom.Pt(0, 10), geom.Pt(10, 0))
//	if err != nil {
//	    // errors.Is(err, geom.ErrInvalidGeometry)
//	}
//	r.Area()     // 100
//	r.Diagonal() // 14.142...
//
// Every derived metric is computed from the two corners on demand.
//
// # Bounding Boxes
//
// [BoundingBox] and [BoundingBoxSeq] build the smallest rectangle enclosing a
// set of points. An empty set, or a set with no extent along either axis, is
// rejected.
//
// # Fixed-Point Interop
//
// [Rect.Fixed] and [RectFromFixed] convert to and from the 26.6 fixed-point
// rectangles used by font rasterizers. Coordinates are rounded to 1/64 and
// must fit the 26.6 range of roughly ±2^25.
package geom
