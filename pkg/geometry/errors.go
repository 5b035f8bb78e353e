package geometry

import "errors"

// ErrInvalidGeometry reports a caller contract violation: the requested
// rectangle would not have strictly positive width and height, or a scale
// factor or image dimension was not positive.
var ErrInvalidGeometry = errors.New("invalid geometry")

// ErrEmptyInput reports that an operation requiring at least one candidate
// was called with none.
var ErrEmptyInput = errors.New("empty input")
