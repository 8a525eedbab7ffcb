// Package textgeo groups two small libraries: word tokenization and 2D
// geometry.
//
// Word handling lives in the words package:
//
//	words.Split("Can't stop, won't stop") // ["Can't", "stop", "won't", "stop"]
//	words.Capitalize("hello-world")       // "Hello-world"
//
// Points and rectangles live in the geom package:
//
//	r, err := geom.NewRect(geom.Pt(0, 10), geom.Pt(10, 0))
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(r.Area()) // 100
//
// The cmd/textgeo command exposes both from the terminal.
package textgeo

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	box := textgeo.Must(geom.BoundingBox(points...))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
