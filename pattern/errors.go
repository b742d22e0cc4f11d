package pattern

import "errors"

// ErrInvalidSize is returned for sizes outside [LowerBound, UpperBound].
var ErrInvalidSize = errors.New("invalid rangoli size")
