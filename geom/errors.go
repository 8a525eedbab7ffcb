package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is the kind shared by every rejected construction.
	ErrInvalidGeometry = errors.New("geom: invalid geometry")

	ErrNonPositiveWidth  = fmt.Errorf("%w: width must be positive", ErrInvalidGeometry)
	ErrNonPositiveHeight = fmt.Errorf("%w: height must be positive", ErrInvalidGeometry)
	ErrNoPoints          = fmt.Errorf("%w: bounding box of an empty point set", ErrInvalidGeometry)
	ErrOutOfFixedRange   = fmt.Errorf("%w: coordinate outside the 26.6 fixed-point range", ErrInvalidGeometry)
)
